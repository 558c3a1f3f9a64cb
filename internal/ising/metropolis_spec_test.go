package ising

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ising/internal/lattice"
)

var _ = Describe("Metropolis updates", func() {
	var sys *System

	Context("on a randomized lattice", func() {
		BeforeEach(func() {
			sys = New(12, DefaultParams(), rand.New(rand.NewPCG(2024, 7)))
			sys.Randomize()
		})

		It("holds only valid spins after initialization", func() {
			Expect(sys.Lattice().Valid()).To(BeTrue())
		})

		It("changes at most one cell per step", func() {
			for k := 0; k < 500; k++ {
				before := sys.Lattice().Clone()
				mv, err := sys.Step()
				Expect(err).NotTo(HaveOccurred())

				diff := before.Diff(sys.Lattice())
				if mv.Accepted {
					Expect(diff).To(Equal(1))
					Expect(sys.Lattice().At(mv.I, mv.J)).To(Equal(-before.At(mv.I, mv.J)))
				} else {
					Expect(diff).To(BeZero())
				}
			}
		})

		It("keeps every spin valid across many steps", func() {
			for k := 0; k < 10*sys.Lattice().Len(); k++ {
				_, err := sys.Step()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(sys.Lattice().Valid()).To(BeTrue())
			Expect(sys.Dim()).To(Equal(12))
		})

		It("reports a ratio in [0, 1]", func() {
			for k := 0; k < 200; k++ {
				mv, err := sys.Step()
				Expect(err).NotTo(HaveOccurred())
				Expect(mv.Ratio).To(BeNumerically(">=", 0))
				Expect(mv.Ratio).To(BeNumerically("<=", 1))
			}
		})
	})

	Context("when every exponent is non-positive", func() {
		BeforeEach(func() {
			sys = New(4, Params{CouplingConst: 1, Beta: 1}, rand.New(rand.NewPCG(5, 9)))
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					spin := lattice.Down
					if (i+j)%2 == 0 {
						spin = lattice.Up
					}
					Expect(sys.Lattice().Set(i, j, spin)).To(Succeed())
				}
			}
		})

		It("always flips the chosen cell", func() {
			before := sys.Lattice().Clone()
			mv, err := sys.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(mv.Exponent).To(BeNumerically("<=", 0))
			Expect(mv.Ratio).To(Equal(1.0))
			Expect(mv.Accepted).To(BeTrue())
			Expect(before.Diff(sys.Lattice())).To(Equal(1))
		})
	})

	Context("at very low temperature with unfavourable moves", func() {
		It("rejects every move", func() {
			sys = New(4, Params{CouplingConst: -1, Beta: 1000}, rand.New(rand.NewPCG(3, 4)))
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					spin := lattice.Down
					if (i+j)%2 == 0 {
						spin = lattice.Up
					}
					Expect(sys.Lattice().Set(i, j, spin)).To(Succeed())
				}
			}
			before := sys.Lattice().Clone()

			for k := 0; k < 100; k++ {
				mv, err := sys.Step()
				Expect(err).NotTo(HaveOccurred())
				Expect(mv.Accepted).To(BeFalse())
			}
			Expect(sys.Lattice().Equal(before)).To(BeTrue())
		})
	})

	Context("on an uninitialized lattice", func() {
		It("fails loudly instead of coercing the cell", func() {
			sys = New(3, DefaultParams(), rand.New(rand.NewPCG(1, 1)))
			err := sys.UpdateSite(1, 1)
			Expect(err).To(MatchError(ErrInvalidState))
			Expect(sys.Lattice().At(1, 1)).To(BeZero())
		})
	})
})
