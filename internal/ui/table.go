package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table. The first row is the header.
func PrintTable(data [][]string, w io.Writer) {
	table := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data)

	str, err := table.Srender()
	if err != nil {
		fmt.Fprintln(w, pterm.Error.Sprintf("failed to render table: %s", err))
		return
	}

	fmt.Fprintln(w, str)
}
