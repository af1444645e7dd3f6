// Package ioreader parses the five text formats spec.md §6 names as
// external collaborators: analyte-set ("GMT"), rank, interest/reference,
// edge, and seed files.
package ioreader

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

// WriteGMT writes coll back out in the same tab-separated format ReadGMT
// parses: set id, URL, member names.
func WriteGMT(w io.Writer, coll analyte.Collection) error {
	bw := bufio.NewWriter(w)
	for _, item := range coll {
		row := append([]string{item.ID, item.URL}, item.Members...)
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadGMT parses a tab-separated analyte-set file: column 1 is the set
// id, column 2 an optional URL, columns 3+ member analyte names. Ragged
// rows and a trailing empty column are tolerated.
func ReadGMT(path string) (analyte.Collection, error) {
	records, err := readTSV(path)
	if err != nil {
		return nil, err
	}
	coll := make(analyte.Collection, 0, len(records))
	for _, row := range records {
		if len(row) < 1 || strings.TrimSpace(row[0]) == "" {
			return nil, analyte.NewError(analyte.MalformedInput, path, errEmptySetID)
		}
		item := analyte.Item{ID: strings.TrimSpace(row[0])}
		var members []string
		if len(row) > 1 {
			item.URL = strings.TrimSpace(row[1])
			members = row[2:]
		}
		for _, member := range members {
			member = strings.TrimSpace(member)
			if member == "" {
				continue
			}
			item.Members = append(item.Members, member)
		}
		coll = append(coll, item)
	}
	return coll, nil
}

// WriteRankFile writes list back out as a two-column analyte/score file.
func WriteRankFile(w io.Writer, list analyte.RankList) error {
	bw := bufio.NewWriter(w)
	for _, item := range list {
		if _, err := bw.WriteString(item.Analyte + "\t" + strconv.FormatFloat(item.Score, 'g', -1, 64) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRankFile parses a two-column analyte/score rank file. Unparseable
// scores are a hard MalformedInput error, per spec.md §6.
func ReadRankFile(path string) (analyte.RankList, error) {
	records, err := readTSV(path)
	if err != nil {
		return nil, err
	}
	list := make(analyte.RankList, 0, len(records))
	for _, row := range records {
		if len(row) < 2 {
			return nil, analyte.NewError(analyte.MalformedInput, path, errRankFileColumns)
		}
		name := strings.TrimSpace(row[0])
		score, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, analyte.NewError(analyte.MalformedInput, name, err)
		}
		list = append(list, analyte.RankListItem{Analyte: name, Score: score})
	}
	return list, nil
}

// ReadAnalyteList reads an interest file and a reference file (one
// analyte per line) and applies spec.md §6's intersection rule: the
// reference is intersected with the union of gmtMembers first, then the
// interest list is intersected with the resulting effective reference.
func ReadAnalyteList(interestPath, referencePath string, gmtMembers map[string]struct{}) (interest, reference map[string]struct{}, err error) {
	rawReference, err := readLines(referencePath)
	if err != nil {
		return nil, nil, err
	}
	rawInterest, err := readLines(interestPath)
	if err != nil {
		return nil, nil, err
	}

	reference = make(map[string]struct{}, len(rawReference))
	for _, name := range rawReference {
		if _, ok := gmtMembers[name]; ok {
			reference[name] = struct{}{}
		}
	}
	interest = make(map[string]struct{}, len(rawInterest))
	for _, name := range rawInterest {
		if _, ok := reference[name]; ok {
			interest[name] = struct{}{}
		}
	}
	return interest, reference, nil
}

// ReadEdgeList parses a whitespace-separated undirected edge file, two
// node names per line.
func ReadEdgeList(path string) (analyte.EdgeList, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	edges := make(analyte.EdgeList, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, analyte.NewError(analyte.MalformedInput, path, errEdgeLineColumns)
		}
		edges = append(edges, analyte.Edge{From: fields[0], To: fields[1]})
	}
	return edges, nil
}

// ReadSeeds parses a one-node-per-line seed file; blank lines are
// ignored.
func ReadSeeds(path string) ([]string, error) {
	return readLines(path)
}

func readTSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, analyte.NewError(analyte.IOError, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, analyte.NewError(analyte.MalformedInput, path, err)
		}
		records = append(records, row)
	}
	return records, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, analyte.NewError(analyte.IOError, path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, analyte.NewError(analyte.IOError, path, err)
	}
	return lines, nil
}
