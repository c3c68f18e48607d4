// Package theme holds the color palettes of the waterlog dashboard.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme maps color roles to concrete colors.
type Theme struct {
	Name        string
	Description string

	Background    lipgloss.Color // app background
	Surface       lipgloss.Color // cards and panels
	SurfaceHover  lipgloss.Color // active tab, hovered row
	SurfaceBright lipgloss.Color // selected row
	Border        lipgloss.Color
	BorderBright  lipgloss.Color // card borders
	BorderAccent  lipgloss.Color
	TextDim       lipgloss.Color // hints, empty bar track
	TextMuted     lipgloss.Color // labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color // bars under the threshold, headers
	AccentBright  lipgloss.Color
	AccentDim     lipgloss.Color
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color // near the threshold
	Red           lipgloss.Color // over the threshold
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Tide is the default: deep-water blues with a teal accent.
var Tide = Theme{
	Name:          "tide",
	Description:   "deep-water blues",
	Background:    lipgloss.Color("#0B1420"),
	Surface:       lipgloss.Color("#122030"),
	SurfaceHover:  lipgloss.Color("#1A2D42"),
	SurfaceBright: lipgloss.Color("#223A54"),
	Border:        lipgloss.Color("#2A4460"),
	BorderBright:  lipgloss.Color("#3B5E82"),
	BorderAccent:  lipgloss.Color("#2FB7C4"),
	TextDim:       lipgloss.Color("#4A6784"),
	TextMuted:     lipgloss.Color("#8AA4BE"),
	TextPrimary:   lipgloss.Color("#E8F1FA"),
	Accent:        lipgloss.Color("#2FB7C4"),
	AccentBright:  lipgloss.Color("#5FD8E3"),
	AccentDim:     lipgloss.Color("#123B44"),
	Green:         lipgloss.Color("#4FB286"),
	GreenBright:   lipgloss.Color("#72D3A6"),
	Orange:        lipgloss.Color("#F0A04B"),
	Red:           lipgloss.Color("#EF5B5B"),
	Blue:          lipgloss.Color("#3D8BD9"),
	BlueBright:    lipgloss.Color("#6CB2F5"),
	Yellow:        lipgloss.Color("#E8C95A"),
	Magenta:       lipgloss.Color("#B68AE8"),
	Cyan:          lipgloss.Color("#48D1E0"),
}

// Glacier is a pale, low-saturation variant.
var Glacier = Theme{
	Name:          "glacier",
	Description:   "ice and slate",
	Background:    lipgloss.Color("#161B22"),
	Surface:       lipgloss.Color("#1F262E"),
	SurfaceHover:  lipgloss.Color("#29323C"),
	SurfaceBright: lipgloss.Color("#33404C"),
	Border:        lipgloss.Color("#3A4755"),
	BorderBright:  lipgloss.Color("#56677A"),
	BorderAccent:  lipgloss.Color("#9CCFD8"),
	TextDim:       lipgloss.Color("#5A6B7D"),
	TextMuted:     lipgloss.Color("#98A8B8"),
	TextPrimary:   lipgloss.Color("#F2F6FA"),
	Accent:        lipgloss.Color("#9CCFD8"),
	AccentBright:  lipgloss.Color("#C4E6EC"),
	AccentDim:     lipgloss.Color("#2A3D44"),
	Green:         lipgloss.Color("#8FBF9F"),
	GreenBright:   lipgloss.Color("#B1DDBF"),
	Orange:        lipgloss.Color("#E0A87A"),
	Red:           lipgloss.Color("#E07A7A"),
	Blue:          lipgloss.Color("#7FA7D9"),
	BlueBright:    lipgloss.Color("#A8C8F0"),
	Yellow:        lipgloss.Color("#E6D29A"),
	Magenta:       lipgloss.Color("#C3A6E0"),
	Cyan:          lipgloss.Color("#9CCFD8"),
}

// FlexokiDark is a warm dark palette.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Description:   "warm ink",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#66A0C8"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#3AA99F"),
}

// Terminal uses the 16 ANSI colors only.
var Terminal = Theme{
	Name:          "terminal",
	Description:   "16-color ANSI",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("11"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All lists the selectable themes; the first is the default.
var All = []Theme{Tide, Glacier, FlexokiDark, Terminal}

// Active is the theme every renderer reads.
var Active = Tide

// Lookup returns the theme called name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns the theme called name, or the default.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return All[0]
}

// Names returns the theme names in display order.
func Names() []string {
	out := make([]string, len(All))
	for i, t := range All {
		out[i] = t.Name
	}
	return out
}

// SetActive switches the active theme. Unknown names select the default
// and report false.
func SetActive(name string) bool {
	t, ok := Lookup(name)
	if !ok {
		t = All[0]
	}
	Active = t
	return ok
}

// ForProfile picks name, falling back to Terminal when the output cannot
// show 256 or more colors.
func ForProfile(name string, p termenv.Profile) Theme {
	if p == termenv.Ascii || p == termenv.ANSI {
		return Terminal
	}
	return ByName(name)
}
