package ioreader

import "errors"

var (
	errEmptySetID      = errors.New("gmt row has an empty set id")
	errRankFileColumns = errors.New("rank file row has fewer than 2 columns")
	errEdgeLineColumns = errors.New("edge list line does not have exactly 2 node names")
)
