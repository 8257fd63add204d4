package selector

import "github.com/fatih/color"

// Style is a highlight style of a selected option.
type Style int

const (
	StyleDefault Style = iota
	StyleGreen
	StyleBlue
	StyleMagenta
	StyleCyan
)

// ParseStyle converts a color name to a style. Unknown names give StyleDefault.
func ParseStyle(name string) Style {
	switch name {
	case "green":
		return StyleGreen
	case "blue":
		return StyleBlue
	case "magenta":
		return StyleMagenta
	case "cyan":
		return StyleCyan
	default:
		return StyleDefault
	}
}

func (s Style) color() *color.Color {
	switch s {
	case StyleGreen:
		return color.New(color.FgGreen)
	case StyleMagenta:
		return color.New(color.FgMagenta)
	case StyleCyan:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgBlue)
	}
}

// Option is a menu entry.
type Option struct {
	// ID identifies the option for the caller.
	ID string
	// Label is shown for every option.
	Label string
	// Description is shown next to the label of not selected options.
	Description string
	// Style is used to highlight the selected option.
	Style Style
}
