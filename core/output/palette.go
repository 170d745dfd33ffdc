package output

import (
	"strings"

	"github.com/fatih/color"
)

// The color names as string, usable in configuration files.
const (
	DefaultPrimary   = "yellow"
	DefaultSecondary = "hiblack"
	DefaultOptimal   = "green"
	DefaultError     = "red"
	DefaultWarning   = "hiyellow"
)

type (
	// StringPalette declares the color (as string) to use for each role.
	StringPalette struct {
		Primary   string
		Secondary string
		Optimal   string
		Error     string
		Warning   string
	}

	// Palette declares the color attribute to use for each role.
	Palette struct {
		Primary   color.Attribute
		Secondary color.Attribute
		Optimal   color.Attribute
		Error     color.Attribute
		Warning   color.Attribute
		Bold      color.Attribute
	}

	// PaletteFunc hosts the colorizer functions of each role.
	PaletteFunc struct {
		Primary   func(a ...any) string
		Secondary func(a ...any) string
		Optimal   func(a ...any) string
		Error     func(a ...any) string
		Warning   func(a ...any) string
		Bold      func(a ...any) string
	}
)

var fgColors = map[string]color.Attribute{
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"hiblack":   color.FgHiBlack,
	"hired":     color.FgHiRed,
	"higreen":   color.FgHiGreen,
	"hiyellow":  color.FgHiYellow,
	"hiblue":    color.FgHiBlue,
	"himagenta": color.FgHiMagenta,
	"hicyan":    color.FgHiCyan,
	"hiwhite":   color.FgHiWhite,
}

func toFgColor(s string) color.Attribute {
	if c, ok := fgColors[strings.ToLower(s)]; ok {
		return c
	}
	return color.Reset
}

// NewPalette returns a color palette from a string color palette (as
// read by viper). Unset roles use the default colors.
func NewPalette(m StringPalette) Palette {
	pick := func(s, dflt string) color.Attribute {
		if s == "" {
			s = dflt
		}
		return toFgColor(s)
	}
	return Palette{
		Primary:   pick(m.Primary, DefaultPrimary),
		Secondary: pick(m.Secondary, DefaultSecondary),
		Optimal:   pick(m.Optimal, DefaultOptimal),
		Error:     pick(m.Error, DefaultError),
		Warning:   pick(m.Warning, DefaultWarning),
		Bold:      color.Bold,
	}
}

// Func returns the colorizer functions of the palette.
func (t Palette) Func() *PaletteFunc {
	return &PaletteFunc{
		Primary:   color.New(t.Primary).SprintFunc(),
		Secondary: color.New(t.Secondary).SprintFunc(),
		Optimal:   color.New(t.Optimal).SprintFunc(),
		Error:     color.New(t.Error).SprintFunc(),
		Warning:   color.New(t.Warning).SprintFunc(),
		Bold:      color.New(t.Bold).SprintFunc(),
	}
}

// DefaultPaletteFunc returns the colorizer functions of the default
// palette.
func DefaultPaletteFunc() *PaletteFunc {
	return NewPalette(StringPalette{}).Func()
}

// HealthState colors a health state or status literal by severity.
func (t *PaletteFunc) HealthState(s string) string {
	switch strings.ToLower(s) {
	case "ok", "up", "ready", "active", "rollingforwardcompleted", "completed":
		return t.Optimal(s)
	case "warning", "disabling", "disabled", "enabling", "inquorum", "reconfiguring", "upgrading", "rollingforwardinprogress", "rollingbackinprogress", "inprogress":
		return t.Warning(s)
	case "error", "down", "failed", "quorumloss", "rollingbackcompleted":
		return t.Error(s)
	default:
		return t.Secondary(s)
	}
}

// SetColor sets the color mode: "no" or "never" disables the colors,
// "yes" or "always" forces them, "auto" colors only terminals.
func SetColor(s string) {
	switch strings.ToLower(s) {
	case "no", "never", "false":
		color.NoColor = true
	case "yes", "always", "true":
		color.NoColor = false
	}
}
