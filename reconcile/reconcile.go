// Package reconcile folds mutation count rows with free-text, possibly
// composite, gene labels (e.g. "ais ← / → arnB") onto a canonical gene set.
package reconcile

import (
	"github.com/dasnellings/breseqTools/counts"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Tokenize splits a label on anything that is not a letter, digit or
// underscore and uppercases the pieces.
func Tokenize(label string) []string {
	tokens := tokenPattern.FindAllString(label, -1)
	for i := range tokens {
		tokens[i] = strings.ToUpper(tokens[i])
	}
	return tokens
}

// Coerce parses a count cell. Cells that are not numbers count as zero.
func Coerce(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// Summary tallies how rows were assigned during reconciliation.
type Summary struct {
	Processed    int
	Matched      int // rows naming at least one gene
	MultiMatched int // rows with more than one token naming a gene
	Unmatched    int
}

// Matrix holds accumulated counts for each canonical gene and condition.
type Matrix struct {
	genes      []string
	conditions []string
	rows       map[string][]float64
}

func newMatrix(genes, conditions []string) *Matrix {
	m := &Matrix{
		genes:      genes,
		conditions: conditions,
		rows:       make(map[string][]float64, len(genes)),
	}
	for i := range genes {
		m.rows[genes[i]] = make([]float64, len(conditions))
	}
	return m
}

func (m *Matrix) Genes() []string {
	return m.genes
}

func (m *Matrix) Conditions() []string {
	return m.conditions
}

// Row returns the counts of gene aligned with Conditions, or nil if the gene
// is not part of the matrix.
func (m *Matrix) Row(gene string) []float64 {
	return m.rows[gene]
}

// Count returns the accumulated count of gene under condition.
func (m *Matrix) Count(gene, condition string) float64 {
	row := m.rows[gene]
	for i := range m.conditions {
		if m.conditions[i] == condition && row != nil {
			return row[i]
		}
	}
	return 0
}

// Totals returns the column sums of the matrix.
func (m *Matrix) Totals() []float64 {
	ans := make([]float64, len(m.conditions))
	for _, gene := range m.genes {
		floats.Add(ans, m.rows[gene])
	}
	return ans
}

// Nonzero returns the number of genes with a positive total count.
func (m *Matrix) Nonzero() int {
	var ans int
	for _, gene := range m.genes {
		if floats.Sum(m.rows[gene]) > 0 {
			ans++
		}
	}
	return ans
}

// Reconcile accumulates the counts of every row onto each canonical gene its
// label names. A row naming several genes adds its full counts to each of
// them. Rows naming no gene are dropped and tallied as unmatched. Every gene
// in idx is present in the result, with zero counts if nothing matched it.
func Reconcile(idx *Index, conditions []string, rows []counts.Row) (*Matrix, Summary) {
	var s Summary
	m := newMatrix(idx.Genes(), conditions)
	values := make([]float64, len(conditions))
	var hits []string
	var tokens, i int
	for _, row := range rows {
		s.Processed++
		hits, tokens = matchGenes(idx, row.Label, hits[:0])
		if len(hits) == 0 {
			s.Unmatched++
			continue
		}
		s.Matched++
		if tokens > 1 {
			s.MultiMatched++
		}

		for i = range values {
			values[i] = 0
			if i < len(row.Cells) {
				values[i] = Coerce(row.Cells[i])
			}
		}
		for _, gene := range hits {
			floats.Add(m.rows[gene], values)
		}
	}
	return m, s
}

// matchGenes appends the distinct canonical genes named in label to ans, in
// the order they first appear, and also returns the number of tokens that
// named a gene, repeats included.
func matchGenes(idx *Index, label string, ans []string) ([]string, int) {
	var gene string
	var found bool
	var tokens int
	for _, token := range Tokenize(label) {
		if gene, found = idx.Lookup(token); !found {
			continue
		}
		tokens++
		if !slices.Contains(ans, gene) {
			ans = append(ans, gene)
		}
	}
	return ans, tokens
}
