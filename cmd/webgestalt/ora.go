package main

import (
	"github.com/spf13/cobra"

	"github.com/bzhanglab/webgestalt-go/ioreader"
	"github.com/bzhanglab/webgestalt-go/ora"
	"github.com/bzhanglab/webgestalt-go/resultio"
)

func oraCmd() *cobra.Command {
	var interestPath, referencePath, gmtPath, outPath, format string
	var minOverlap, minSetSize, maxSetSize int

	cmd := &cobra.Command{
		Use:   "ora",
		Short: "Run over-representation analysis on an interest/reference pair against a gmt",
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := ioreader.ReadGMT(gmtPath)
			if err != nil {
				return err
			}
			gmtMembers := make(map[string]struct{})
			for _, s := range sets {
				for _, m := range s.Members {
					gmtMembers[m] = struct{}{}
				}
			}

			interest, reference, err := ioreader.ReadAnalyteList(interestPath, referencePath, gmtMembers)
			if err != nil {
				return err
			}

			cfg := ora.DefaultConfig()
			cfg.MinOverlap = minOverlap
			cfg.MinSetSize = minSetSize
			cfg.MaxSetSize = maxSetSize

			results, err := ora.Run(interest, reference, sets, cfg)
			if err != nil {
				return err
			}

			f, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()

			if format == "json" {
				return resultio.WriteORAJSON(f, results)
			}
			return resultio.WriteORATSV(f, results)
		},
	}

	cmd.Flags().StringVar(&interestPath, "interest", "", "interest list path (required)")
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference list path (required)")
	cmd.Flags().StringVar(&gmtPath, "gmt", "", "analyte-set (gmt) file path (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	cmd.Flags().StringVar(&format, "format", "tsv", "output format: tsv or json")
	cmd.Flags().IntVar(&minOverlap, "min-overlap", 5, "minimum interest/set overlap")
	cmd.Flags().IntVar(&minSetSize, "min-set-size", 5, "minimum set size")
	cmd.Flags().IntVar(&maxSetSize, "max-set-size", 500, "maximum set size")
	cmd.MarkFlagRequired("interest")
	cmd.MarkFlagRequired("reference")
	cmd.MarkFlagRequired("gmt")

	return cmd
}
