package main

import (
	"github.com/spf13/cobra"

	"github.com/bzhanglab/webgestalt-go/gsea"
	"github.com/bzhanglab/webgestalt-go/ioreader"
	"github.com/bzhanglab/webgestalt-go/resultio"
)

func gseaCmd() *cobra.Command {
	var rankPath, gmtPath, outPath, format string
	var permutations, minOverlap, maxOverlap int
	var pExponent float64
	var parallelPermutations bool

	cmd := &cobra.Command{
		Use:   "gsea",
		Short: "Run Gene Set Enrichment Analysis on a rank file against a gmt",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ioreader.ReadRankFile(rankPath)
			if err != nil {
				return err
			}
			sets, err := ioreader.ReadGMT(gmtPath)
			if err != nil {
				return err
			}

			cfg := gsea.DefaultConfig()
			cfg.Permutations = permutations
			cfg.MinOverlap = minOverlap
			cfg.MaxOverlap = maxOverlap
			cfg.PExponent = pExponent
			cfg.ParallelPermutations = parallelPermutations

			results, err := gsea.Run(list, sets, cfg, nil)
			if err != nil {
				return err
			}

			f, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()

			if format == "json" {
				return resultio.WriteGSEAJSON(f, results)
			}
			return resultio.WriteGSEATSV(f, results)
		},
	}

	cmd.Flags().StringVar(&rankPath, "rank", "", "rank file path (required)")
	cmd.Flags().StringVar(&gmtPath, "gmt", "", "analyte-set (gmt) file path (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	cmd.Flags().StringVar(&format, "format", "tsv", "output format: tsv or json")
	cmd.Flags().IntVar(&permutations, "permutations", 1000, "permutation count")
	cmd.Flags().IntVar(&minOverlap, "min-overlap", 15, "minimum set/list overlap")
	cmd.Flags().IntVar(&maxOverlap, "max-overlap", 500, "maximum set/list overlap")
	cmd.Flags().Float64Var(&pExponent, "p", 1, "weighting exponent")
	cmd.Flags().BoolVar(&parallelPermutations, "parallel-permutations", false, "parallelize the inner permutation loop")
	cmd.MarkFlagRequired("rank")
	cmd.MarkFlagRequired("gmt")

	return cmd
}
