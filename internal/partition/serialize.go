package partition

import (
	"strconv"
	"strings"
)

// SerializePadded renders the partition as a rectangular k×maxSize
// matrix in the brace format, padding short groups with -1 so the
// result is serializable the same way an adjacency matrix is —
// BruteForce's output encoding (spec.md §4.7).
func (p Partition) SerializePadded() string {
	maxSize := 0
	for _, g := range p.Groups {
		if len(g) > maxSize {
			maxSize = len(g)
		}
	}
	rowStrs := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		vals := make([]string, maxSize)
		for j := 0; j < maxSize; j++ {
			if j < len(g) {
				vals[j] = strconv.Itoa(g[j])
			} else {
				vals[j] = "-1"
			}
		}
		rowStrs[i] = "{" + strings.Join(vals, ",") + "}"
	}
	return "{" + strings.Join(rowStrs, ",") + "}"
}

// SerializeRagged renders the partition without padding —
// "{{v,v,...},{v,...},...}" — for algorithms whose groups are
// naturally variable length (spec.md §4.7, §6).
func (p Partition) SerializeRagged() string {
	rowStrs := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		vals := make([]string, len(g))
		for j, v := range g {
			vals[j] = strconv.Itoa(v)
		}
		rowStrs[i] = "{" + strings.Join(vals, ",") + "}"
	}
	return "{" + strings.Join(rowStrs, ",") + "}"
}
