package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bzhanglab/webgestalt-go/ioreader"
	"github.com/bzhanglab/webgestalt-go/nta"
	"github.com/bzhanglab/webgestalt-go/resultio"
)

func ntaCmd() *cobra.Command {
	var edgesPath, seedsPath, outPath, format, method string
	var size int
	var resetProbability, tolerance float64

	cmd := &cobra.Command{
		Use:   "nta",
		Short: "Run network topology analysis (random walk with restart) from a seed list",
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := ioreader.ReadEdgeList(edgesPath)
			if err != nil {
				return err
			}
			seeds, err := ioreader.ReadSeeds(seedsPath)
			if err != nil {
				return err
			}

			var m nta.Method
			switch method {
			case "prioritize":
				m = nta.Prioritize(size)
			case "expand":
				m = nta.Expand(size)
			default:
				return fmt.Errorf("unknown method %q, want \"prioritize\" or \"expand\"", method)
			}

			cfg := nta.Config{
				EdgeList:         edges,
				Seeds:            seeds,
				ResetProbability: resetProbability,
				Tolerance:        tolerance,
				Method:           m,
			}
			result, err := nta.Run(cfg)
			if err != nil {
				return err
			}

			f, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()

			if format == "json" {
				return resultio.WriteNTAJSON(f, result)
			}
			return resultio.WriteNTATSV(f, result)
		},
	}

	cmd.Flags().StringVar(&edgesPath, "edges", "", "edge list path (required)")
	cmd.Flags().StringVar(&seedsPath, "seeds", "", "seed list path (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	cmd.Flags().StringVar(&format, "format", "tsv", "output format: tsv or json")
	cmd.Flags().StringVar(&method, "method", "expand", "selection method: prioritize or expand")
	cmd.Flags().IntVar(&size, "size", 50, "neighborhood size")
	cmd.Flags().Float64Var(&resetProbability, "reset-probability", 0.5, "restart probability")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "convergence tolerance")
	cmd.MarkFlagRequired("edges")
	cmd.MarkFlagRequired("seeds")

	return cmd
}
