// Package ising implements single-spin-flip Metropolis Monte Carlo for the
// two-dimensional Ising model on a periodic square lattice.
//
// The package is organised around one concrete type:
//
//   - [System]: owns a [lattice.Lattice], its [Params] and a [Source]
//   - [System.SiteEnergy], [System.SiteEnergyDiff], [System.StateEnergy]:
//     the nearest-neighbour energy model
//   - [System.Step]: one Metropolis trial on a uniformly drawn site
//   - [System.UpdateSite]: the spin flip applied on acceptance
//
// # Example
//
//	sys := ising.New(32, ising.DefaultParams(), ising.NewSource(0))
//	sys.Randomize()
//	for i := 0; i < sys.Lattice().Len(); i++ {
//	    if _, err := sys.Step(); err != nil {
//	        return err
//	    }
//	}
//
// # Thread Safety
//
// A System is NOT safe for concurrent use. Independent runs must each own
// their own System and Source.
package ising
