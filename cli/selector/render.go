package selector

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/morikuni/aec"
)

const selectedMark = "✔"

// renderer draws the menu. The options region is the option lines followed by
// one blank spacer line, and the cursor is kept right below it.
type renderer struct {
	out   io.Writer
	count int
}

func newRenderer(out io.Writer, count int) renderer {
	return renderer{out: out, count: count}
}

func (r renderer) header(title, hint string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, color.GreenString(title))
	if hint != "" {
		fmt.Fprintln(r.out, color.New(color.Faint).Sprint(hint))
	}
	fmt.Fprintln(r.out)
}

func (r renderer) options(state State) {
	faint := color.New(color.Faint)
	for i, option := range state.Options {
		if i == state.Selected {
			fmt.Fprintf(r.out, "%s %s\n", color.GreenString(selectedMark),
				option.Style.color().Sprint(option.Label))
			continue
		}
		line := "  " + faint.Sprint(option.Label)
		if option.Description != "" {
			line += " " + faint.Sprint(option.Description)
		}
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
}

// clear moves the cursor to the first line of the options region and erases
// everything below it.
func (r renderer) clear() {
	fmt.Fprintf(r.out, "%s%s", aec.Up(uint(r.count+1)), aec.EraseDisplay(aec.EraseModes.Tail))
}

func (r renderer) redraw(state State) {
	r.clear()
	r.options(state)
}

// collapse replaces the options region with the chosen option.
func (r renderer) collapse(option Option) {
	r.clear()
	fmt.Fprintf(r.out, "%s %s\n\n", color.GreenString(selectedMark),
		option.Style.color().Sprint(option.Label))
}
