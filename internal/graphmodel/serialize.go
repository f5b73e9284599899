package graphmodel

import (
	"strconv"
	"strings"

	"graphpart/internal/errs"
)

// Serialize renders a matrix in the nested-brace textual form spec.md
// §6 defines: "{{a,b,c},{d,e,f},...}".
func Serialize(rows [][]float64) string {
	if len(rows) == 0 {
		return "{}"
	}
	rowStrs := make([]string, len(rows))
	for i, row := range rows {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rowStrs[i] = "{" + strings.Join(vals, ",") + "}"
	}
	return "{" + strings.Join(rowStrs, ",") + "}"
}

// Deserialize parses the brace format back into a [][]float64.
// Whitespace/newlines are stripped before parsing, rows are split on
// the literal "},{", and values are parsed as reals (spec.md §6).
func Deserialize(s string) ([][]float64, error) {
	stripped := stripWhitespace(s)
	if stripped == "{}" {
		return nil, nil
	}
	if len(stripped) < 2 || stripped[0] != '{' || stripped[len(stripped)-1] != '}' {
		return nil, errs.New(errs.InvalidInput, "malformed matrix: missing outer braces")
	}
	inner := stripped[1 : len(stripped)-1]
	if len(inner) < 2 || inner[0] != '{' || inner[len(inner)-1] != '}' {
		return nil, errs.New(errs.InvalidInput, "malformed matrix: missing row braces")
	}
	inner = inner[1 : len(inner)-1]

	rowStrs := strings.Split(inner, "},{")
	rows := make([][]float64, len(rowStrs))
	for i, rowStr := range rowStrs {
		if rowStr == "" {
			rows[i] = []float64{}
			continue
		}
		parts := strings.Split(rowStr, ",")
		row := make([]float64, len(parts))
		for j, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, errs.Wrap(errs.InvalidInput, "malformed matrix value", err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
