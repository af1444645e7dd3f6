// Package resultio writes result records to TSV and JSON. The core
// engines "do not prescribe a format" (spec.md §6), so this package
// stays deliberately thin: one writer function per result type per
// format.
package resultio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

// WriteGSEATSV writes results as tab-separated values with a header row.
func WriteGSEATSV(w io.Writer, results []analyte.GSEAResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	defer cw.Flush()

	if err := cw.Write([]string{"set", "p", "fdr", "es", "nes", "leading_edge"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Set,
			strconv.FormatFloat(r.P, 'g', -1, 64),
			strconv.FormatFloat(r.FDR, 'g', -1, 64),
			strconv.FormatFloat(r.ES, 'g', -1, 64),
			strconv.FormatFloat(r.NES, 'g', -1, 64),
			strconv.Itoa(r.LeadingEdge),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteGSEAJSON writes results as a JSON array.
func WriteGSEAJSON(w io.Writer, results []analyte.GSEAResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteORATSV writes results as tab-separated values with a header row.
func WriteORATSV(w io.Writer, results []analyte.ORAResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	defer cw.Flush()

	if err := cw.Write([]string{"set", "p", "fdr", "overlap", "expected", "enrichment_ratio"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Set,
			strconv.FormatFloat(r.P, 'g', -1, 64),
			strconv.FormatFloat(r.FDR, 'g', -1, 64),
			strconv.Itoa(r.Overlap),
			strconv.FormatFloat(r.Expected, 'g', -1, 64),
			strconv.FormatFloat(r.EnrichmentRatio, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteORAJSON writes results as a JSON array.
func WriteORAJSON(w io.Writer, results []analyte.ORAResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteNTATSV writes a single NTA result as tab-separated
// neighborhood/score rows.
func WriteNTATSV(w io.Writer, result analyte.NTAResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	defer cw.Flush()

	if err := cw.Write([]string{"node", "score"}); err != nil {
		return err
	}
	for i, node := range result.Neighborhood {
		row := []string{node, strconv.FormatFloat(result.Scores[i], 'g', -1, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteNTAJSON writes a single NTA result as a JSON object.
func WriteNTAJSON(w io.Writer, result analyte.NTAResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
