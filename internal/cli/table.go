package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// printTable writes tab-separated rows under header, aligned in columns.
// An empty table prints empty instead.
func printTable(w io.Writer, empty string, header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
