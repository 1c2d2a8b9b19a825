package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document to stdout with terminal styling.
// When rendering fails the raw markdown is printed instead, which is still
// perfectly readable.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, rerr := r.Render(doc); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(doc)
}
