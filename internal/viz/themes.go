package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for spins and chrome.
type Theme struct {
	Name   string
	Up     lipgloss.Color
	Down   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeMagma = Theme{
		Name:   "magma",
		Up:     lipgloss.Color("#fcfdbf"),
		Down:   lipgloss.Color("#3b0f70"),
		Accent: lipgloss.Color("#fe9f6d"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Up:     lipgloss.Color("#e0f0ff"),
		Down:   lipgloss.Color("#0077be"),
		Accent: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Up:     lipgloss.Color("#ffffff"),
		Down:   lipgloss.Color("#222222"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Up:     lipgloss.Color("#00ff00"),
		Down:   lipgloss.Color("#001100"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
	}

	// Default theme
	CurrentTheme = ThemeMagma

	Themes = []Theme{
		ThemeMagma,
		ThemeOcean,
		ThemeMinimal,
		ThemeRetroGreen,
	}
)

// GetTheme returns a theme by name, falling back to magma.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMagma
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
