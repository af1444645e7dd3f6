// Command webgestalt is the thin CLI collaborator around the gsea, ora,
// nta, and combine engines: parse input files, run the chosen engine,
// write results.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

func main() {
	root := &cobra.Command{
		Use:   "webgestalt",
		Short: "Pathway and gene-set enrichment analysis",
	}
	root.AddCommand(
		gseaCmd(),
		oraCmd(),
		ntaCmd(),
		combineCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderErr(err))
		os.Exit(1)
	}
}

// renderErr formats an *analyte.Error as "Error in `context`: message",
// per spec.md §7's example message; any other error is printed as-is.
func renderErr(err error) string {
	var e *analyte.Error
	if errors.As(err, &e) {
		if e.Context != "" {
			return fmt.Sprintf("Error in `%s`: %v", e.Context, e.Err)
		}
		return fmt.Sprintf("Error: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// openOutput creates out for writing, or returns stdout when out is "".
func openOutput(out string) (*os.File, func(), error) {
	if out == "" {
		return os.Stdout, func() {}, nil
	}
	if _, err := os.Stat(out); err == nil {
		return nil, nil, fmt.Errorf("refusing to overwrite existing file %q (remove it first)", out)
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, analyte.NewError(analyte.IOError, out, err)
	}
	return f, func() { f.Close() }, nil
}
