package merge

import (
	"github.com/dasnellings/breseqTools/counts"
	"github.com/dasnellings/breseqTools/positions"
	"github.com/dasnellings/breseqTools/reconcile"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	outCsv := filepath.Join(dir, "circos_heatmap_all.csv")
	outTsv := filepath.Join(dir, "circos_heatmap_all.tsv")
	Merge("testdata/positions.csv", "testdata/grouped.csv", outCsv, outTsv, 1)

	for _, files := range [][2]string{{outCsv, "testdata/expected.csv"}, {outTsv, "testdata/expected.tsv"}} {
		actual, err := os.ReadFile(files[0])
		if err != nil {
			t.Fatal(err)
		}
		expected, err := os.ReadFile(files[1])
		if err != nil {
			t.Fatal(err)
		}
		if string(actual) != string(expected) {
			t.Errorf("problem with %s. expected:\n%s\nactual:\n%s", files[0], expected, actual)
		}
	}
}

func TestMergeRepeatable(t *testing.T) {
	dir := t.TempDir()
	var outputs []string
	for _, name := range []string{"a.csv", "b.csv"} {
		file := filepath.Join(dir, name)
		Merge("testdata/positions.csv", "testdata/grouped.csv", file, "", 0)
		b, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, string(b))
	}
	if outputs[0] != outputs[1] {
		t.Error("merge output differs between runs")
	}
}

func TestJoin(t *testing.T) {
	genes := []positions.GenePosition{
		{Chrom: "chr2", Start: 10, End: 20, Gene: "gyrA"},
		{Chrom: "chr1", Start: 50, End: 60, Gene: "marR"},
		{Chrom: "chr1", Start: 5, End: 9, Gene: "acrB"},
	}
	idx := reconcile.NewIndex([]string{"gyrA", "marR"})
	m, _ := reconcile.Reconcile(idx, []string{"Cef"}, []counts.Row{{Label: "marR", Cells: []string{"2"}}})

	records := Join(genes, m)
	expected := []Record{
		{positions.GenePosition{Chrom: "chr1", Start: 5, End: 9, Gene: "acrB"}, []float64{0}},
		{positions.GenePosition{Chrom: "chr1", Start: 50, End: 60, Gene: "marR"}, []float64{2}},
		{positions.GenePosition{Chrom: "chr2", Start: 10, End: 20, Gene: "gyrA"}, []float64{0}},
	}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("problem joining counts.\nexpected: %v\nactual: %v", expected, records)
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[float64]string{
		0:    "0.0",
		3:    "3.0",
		2.5:  "2.5",
		12:   "12.0",
		0.25: "0.25",
	}
	for v, expected := range tests {
		if actual := FormatCount(v); actual != expected {
			t.Errorf("problem formatting %v. expected: %s actual: %s", v, expected, actual)
		}
	}
}

func TestSummary(t *testing.T) {
	idx := reconcile.NewIndex([]string{"rpoB", "gyrA", "marR"})
	rows := []counts.Row{
		{Label: "rpoB", Cells: []string{"1"}},
		{Label: "gyrA / marR", Cells: []string{"2"}},
		{Label: "unknown", Cells: []string{"5"}},
	}
	m, s := reconcile.Reconcile(idx, []string{"Cef"}, rows)
	expected := "---- Summary ----\n" +
		"Grouped rows processed: 3\n" +
		"Matched rows (>=1 gene hit): 2\n" +
		"Rows with multiple gene hits: 1\n" +
		"Rows with no gene hits: 1\n" +
		"Genes in positions table: 3\n" +
		"Genes with any nonzero counts: 3\n"
	if actual := summary(s, m); actual != expected {
		t.Errorf("problem with summary. expected:\n%s\nactual:\n%s", expected, actual)
	}
}
