package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bzhanglab/webgestalt-go/analyte"
	"github.com/bzhanglab/webgestalt-go/combine"
	"github.com/bzhanglab/webgestalt-go/ioreader"
)

func combineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Multi-list combinator: gmt union or ranked-list merge",
	}
	cmd.AddCommand(combineGMTCmd(), combineListCmd())
	return cmd
}

func combineGMTCmd() *cobra.Command {
	var gmtPaths []string
	var outPath string

	cmd := &cobra.Command{
		Use:   "gmt",
		Short: "Union several gmt files into one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(gmtPaths) == 0 {
				return fmt.Errorf("provide at least one --gmt")
			}
			collections := make([]analyte.Collection, 0, len(gmtPaths))
			for _, p := range gmtPaths {
				coll, err := ioreader.ReadGMT(p)
				if err != nil {
					return err
				}
				collections = append(collections, coll)
			}
			union := combine.UnionSets(collections...)

			f, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()
			return ioreader.WriteGMT(f, union)
		},
	}
	cmd.Flags().StringArrayVar(&gmtPaths, "gmt", nil, "gmt file path (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	return cmd
}

func combineListCmd() *cobra.Command {
	var rankPaths []string
	var outPath, normalizeName, combineName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Normalize and merge several ranked lists into one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rankPaths) == 0 {
				return fmt.Errorf("provide at least one --rank")
			}
			lists := make([][]analyte.RankListItem, 0, len(rankPaths))
			for _, p := range rankPaths {
				list, err := ioreader.ReadRankFile(p)
				if err != nil {
					return err
				}
				lists = append(lists, list)
			}

			norm, err := parseNormalizeMethod(normalizeName)
			if err != nil {
				return err
			}
			comb, err := parseCombineMethod(combineName)
			if err != nil {
				return err
			}

			merged := combine.MergeLists(lists, norm, comb)

			f, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()
			return ioreader.WriteRankFile(f, merged)
		},
	}
	cmd.Flags().StringArrayVar(&rankPaths, "rank", nil, "rank file path (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	cmd.Flags().StringVar(&normalizeName, "normalize", "none", "normalization mode: none, median-rank, median-value, mean-value")
	cmd.Flags().StringVar(&combineName, "combine", "mean", "combination mode: max, mean")
	return cmd
}

func parseNormalizeMethod(name string) (combine.NormalizeMethod, error) {
	switch name {
	case "none":
		return combine.NormalizeNone, nil
	case "median-rank":
		return combine.NormalizeMedianRank, nil
	case "median-value":
		return combine.NormalizeMedianValue, nil
	case "mean-value":
		return combine.NormalizeMeanValue, nil
	default:
		return 0, fmt.Errorf("unknown normalize mode %q", name)
	}
}

func parseCombineMethod(name string) (combine.CombineMethod, error) {
	switch name {
	case "max":
		return combine.CombineMax, nil
	case "mean":
		return combine.CombineMean, nil
	default:
		return 0, fmt.Errorf("unknown combine mode %q", name)
	}
}
