package counts

import (
	"strings"
)

// LabelRule records which step of label column detection made the decision.
type LabelRule byte

const (
	LabelPreferred       LabelRule = iota // header matched a known label name
	LabelFirstAlphabetic                  // first column, mostly text
	LabelFirstColumn                      // first column, by default
)

func (r LabelRule) String() string {
	switch r {
	case LabelPreferred:
		return "preferred header"
	case LabelFirstAlphabetic:
		return "first column (text-like)"
	default:
		return "first column"
	}
}

// Column is a named reference to a column of a count table.
type Column struct {
	Index int
	Name  string
	Rule  LabelRule
}

// PreferredLabels are header names that identify the gene label column,
// highest priority first. Comparison is case-insensitive.
var PreferredLabels = []string{"Row Labels", "row labels", "gene", "Gene", "Genes", "ID", "Id", "name", "Name"}

// DetectLabelColumn chooses the column holding gene labels. The first
// PreferredLabels entry that equals some header (trimmed, case-insensitive)
// wins. Otherwise the first column is used, tagged by whether more than half
// of its cells contain a letter.
func DetectLabelColumn(header []string, records [][]string) Column {
	for _, p := range PreferredLabels {
		p = strings.ToLower(strings.TrimSpace(p))
		for i := range header {
			if strings.ToLower(strings.TrimSpace(header[i])) == p {
				return Column{Index: i, Name: header[i], Rule: LabelPreferred}
			}
		}
	}

	first := Column{Index: 0, Name: header[0], Rule: LabelFirstColumn}
	if len(records) == 0 {
		return first
	}
	var alpha int
	for _, rec := range records {
		if hasLetter(cell(rec, 0)) {
			alpha++
		}
	}
	if float64(alpha)/float64(len(records)) > 0.5 {
		first.Rule = LabelFirstAlphabetic
	}
	return first
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}
