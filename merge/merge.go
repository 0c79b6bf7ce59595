// Package merge joins gene coordinates with mutation counts reconciled from a
// free-text labelled count table. The output feeds Circos heatmap tracks.
package merge

import (
	"encoding/csv"
	"fmt"
	"github.com/dasnellings/breseqTools/counts"
	"github.com/dasnellings/breseqTools/positions"
	"github.com/dasnellings/breseqTools/reconcile"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/floats"
	"log"
	"sort"
	"strconv"
	"strings"
)

// Record is a gene with its reconciled counts, aligned with the conditions
// of the count table.
type Record struct {
	positions.GenePosition
	Counts []float64
}

// Merge writes the counts of countsFile onto the genes of positionsFile as
// CSV and TSV. Either output is skipped when its name is empty.
func Merge(positionsFile, countsFile, outCsv, outTsv string, verbose int) {
	genes := positions.Read(positionsFile)
	names := make([]string, len(genes))
	for i := range genes {
		names[i] = genes[i].Gene
	}
	idx := reconcile.NewIndex(names)
	genes = keep(genes, idx.Kept())
	if verbose > 0 && len(genes) < len(names) {
		log.Printf("dropped %d duplicate gene names from %s\n", len(names)-len(genes), positionsFile)
	}

	table := counts.Read(countsFile)
	if verbose > 0 {
		log.Printf("using column '%s' of %s for gene labels (%s)\n", table.Label.Name, countsFile, table.Label.Rule)
	}

	m, s := reconcile.Reconcile(idx, table.Conditions, table.Rows)
	records := Join(genes, m)

	if outCsv != "" {
		Write(outCsv, ',', m.Conditions(), records)
		log.Println("Wrote CSV:", outCsv)
	}
	if outTsv != "" {
		Write(outTsv, '\t', m.Conditions(), records)
		log.Println("Wrote TSV:", outTsv)
	}

	log.Print(summary(s, m))
	if verbose > 0 {
		log.Print(details(m, records))
	}
}

func keep(genes []positions.GenePosition, kept []int) []positions.GenePosition {
	ans := make([]positions.GenePosition, len(kept))
	for i := range kept {
		ans[i] = genes[kept[i]]
	}
	return ans
}

// Join attaches the counts of each gene in m to its position and sorts the
// result by chromosome, start, end, and gene. Genes missing from m receive
// zero counts.
func Join(genes []positions.GenePosition, m *reconcile.Matrix) []Record {
	ans := make([]Record, len(genes))
	var row []float64
	for i := range genes {
		ans[i].GenePosition = genes[i]
		ans[i].Counts = make([]float64, len(m.Conditions()))
		if row = m.Row(genes[i].Gene); row != nil {
			copy(ans[i].Counts, row)
		}
	}
	sort.SliceStable(ans, func(i, j int) bool {
		return positions.Less(ans[i].GenePosition, ans[j].GenePosition)
	})
	return ans
}

// Write records as a delimited file with header chr,start,end,gene followed by
// one column per condition.
func Write(filename string, delim rune, conditions []string, records []Record) {
	out := fileio.EasyCreate(filename)
	w := csv.NewWriter(out)
	w.Comma = delim

	header := append(append([]string{}, positions.Header...), conditions...)
	err := w.Write(header)
	exception.PanicOnErr(err)

	line := make([]string, len(header))
	var j int
	for i := range records {
		line[0] = records[i].Chrom
		line[1] = strconv.Itoa(records[i].Start)
		line[2] = strconv.Itoa(records[i].End)
		line[3] = records[i].Gene
		for j = range records[i].Counts {
			line[len(positions.Header)+j] = FormatCount(records[i].Counts[j])
		}
		err = w.Write(line)
		exception.PanicOnErr(err)
	}
	w.Flush()
	exception.PanicOnErr(w.Error())
	err = out.Close()
	exception.PanicOnErr(err)
}

// FormatCount writes a count the way a float column is written by most
// dataframe libraries, always with a decimal point (e.g. 3.0, 2.5).
func FormatCount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func summary(s reconcile.Summary, m *reconcile.Matrix) string {
	var ans strings.Builder
	ans.WriteString("---- Summary ----\n")
	fmt.Fprintf(&ans, "Grouped rows processed: %d\n", s.Processed)
	fmt.Fprintf(&ans, "Matched rows (>=1 gene hit): %d\n", s.Matched)
	fmt.Fprintf(&ans, "Rows with multiple gene hits: %d\n", s.MultiMatched)
	fmt.Fprintf(&ans, "Rows with no gene hits: %d\n", s.Unmatched)
	fmt.Fprintf(&ans, "Genes in positions table: %d\n", len(m.Genes()))
	fmt.Fprintf(&ans, "Genes with any nonzero counts: %d\n", m.Nonzero())
	return ans.String()
}

// details reports per-condition totals and a profile of total counts per
// gene in genome order.
func details(m *reconcile.Matrix, records []Record) string {
	var ans strings.Builder
	totals := m.Totals()
	for i, cond := range m.Conditions() {
		fmt.Fprintf(&ans, "Total %s:\t%s\n", cond, FormatCount(totals[i]))
	}
	if len(records) == 0 || len(totals) == 0 {
		return ans.String()
	}

	profile := make([]float64, len(records))
	for i := range records {
		profile[i] = floats.Sum(records[i].Counts)
	}
	ans.WriteString(asciigraph.Plot(profile,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Precision(0),
		asciigraph.Caption("mutations per gene in genome order")))
	ans.WriteByte('\n')
	return ans.String()
}
