package reconcile

import (
	"fmt"
	"github.com/dasnellings/breseqTools/counts"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		label    string
		expected []string
	}{
		{"ais ← / → arnB", []string{"AIS", "ARNB"}},
		{"ampH ← / → sbmA", []string{"AMPH", "SBMA"}},
		{"geneA_x / geneB_y", []string{"GENEA_X", "GENEB_Y"}},
		{"[rpoB]", []string{"RPOB"}},
		{"yjbI,yjbJ;mdtN", []string{"YJBI", "YJBJ", "MDTN"}},
		{"", nil},
		{"   ", nil},
		{"—", nil},
	}

	for _, test := range tests {
		actual := Tokenize(test.label)
		if len(actual) == 0 && len(test.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("problem tokenizing %q. expected: %v actual: %v", test.label, test.expected, actual)
		}
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		cell     string
		expected float64
	}{
		{"3", 3},
		{" 4 ", 4},
		{"2.5", 2.5},
		{"", 0},
		{"NA", 0},
		{"nan", 0},
		{"1,234", 0},
		{"-", 0},
	}

	for _, test := range tests {
		if actual := Coerce(test.cell); actual != test.expected {
			t.Errorf("problem coercing %q. expected: %v actual: %v", test.cell, test.expected, actual)
		}
	}
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex([]string{"arnB", "ais", "ARNB", "thrL", "ais"})
	if idx.Len() != 3 {
		t.Errorf("expected 3 genes in index, found %d", idx.Len())
	}
	if !reflect.DeepEqual(idx.Genes(), []string{"arnB", "ais", "thrL"}) {
		t.Error("problem with index gene order", idx.Genes())
	}
	if !reflect.DeepEqual(idx.Kept(), []int{0, 1, 3}) {
		t.Error("problem with kept rows", idx.Kept())
	}
	if gene, found := idx.Lookup("ARNB"); !found || gene != "arnB" {
		t.Error("first occurrence should win on duplicate names", gene, found)
	}
	if _, found := idx.Lookup("arnB"); found {
		t.Error("lookup keys must be uppercase")
	}
}

func TestReconcileComposite(t *testing.T) {
	idx := NewIndex([]string{"arnB", "ais"})
	rows := []counts.Row{{Label: "ais ← / → arnB", Cells: []string{"3", "0"}}}
	m, s := Reconcile(idx, []string{"Cef", "Str"}, rows)

	for _, gene := range []string{"ais", "arnB"} {
		if m.Count(gene, "Cef") != 3 || m.Count(gene, "Str") != 0 {
			t.Errorf("problem accumulating composite label onto %s: %v", gene, m.Row(gene))
		}
	}
	if s != (Summary{Processed: 1, Matched: 1, MultiMatched: 1}) {
		t.Error("problem with summary", s)
	}
}

func TestReconcileRepeatedGene(t *testing.T) {
	idx := NewIndex([]string{"marR"})
	rows := []counts.Row{{Label: "marR ← / → marR", Cells: []string{"2"}}}
	m, s := Reconcile(idx, []string{"Cef"}, rows)

	if m.Count("marR", "Cef") != 2 {
		t.Error("a repeated gene should be counted once per row", m.Row("marR"))
	}
	if s != (Summary{Processed: 1, Matched: 1, MultiMatched: 1}) {
		t.Error("problem with summary", s)
	}
}

func TestReconcileUnmatched(t *testing.T) {
	idx := NewIndex([]string{"arnB", "ais"})
	rows := []counts.Row{
		{Label: "unknownGene123", Cells: []string{"5"}},
		{Label: "—", Cells: []string{"7"}},
		{Label: "", Cells: []string{"2"}},
	}
	m, s := Reconcile(idx, []string{"Cef"}, rows)
	if s != (Summary{Processed: 3, Unmatched: 3}) {
		t.Error("problem with summary", s)
	}
	for _, gene := range m.Genes() {
		if m.Count(gene, "Cef") != 0 {
			t.Errorf("unmatched rows should not contribute to %s", gene)
		}
	}
	if len(m.Genes()) != 2 {
		t.Error("genes without evidence must stay in the matrix", m.Genes())
	}
}

func TestReconcileAccumulates(t *testing.T) {
	idx := NewIndex([]string{"rpoB", "gyrA", "marR", "acrB"})
	conditions := []string{"LB", "Cef", "Str"}
	rows := []counts.Row{
		{Label: "rpoB", Cells: []string{"1", "2", "x"}},
		{Label: "RPOB", Cells: []string{"1", "", "4"}},
		{Label: "gyrA / marR", Cells: []string{"0", "3", "1"}},
		{Label: "marR ← / → marR", Cells: []string{"2", "0", "0"}},
		{Label: "nothing here", Cells: []string{"9", "9", "9"}},
		{Label: "acrB", Cells: []string{"1"}},
	}
	m, s := Reconcile(idx, conditions, rows)

	expected := map[string][]float64{
		"rpoB": {2, 2, 4},
		"gyrA": {0, 3, 1},
		"marR": {2, 3, 1},
		"acrB": {1, 0, 0},
	}
	for gene, want := range expected {
		if !reflect.DeepEqual(m.Row(gene), want) {
			t.Errorf("problem with counts for %s. expected: %v actual: %v", gene, want, m.Row(gene))
		}
	}
	if s != (Summary{Processed: 6, Matched: 5, MultiMatched: 2, Unmatched: 1}) {
		t.Error("problem with summary", s)
	}

	// column totals equal the sum over matching rows, once per matched gene
	if !reflect.DeepEqual(m.Totals(), []float64{5, 8, 6}) {
		t.Error("problem with totals", m.Totals())
	}
	if m.Nonzero() != 4 {
		t.Error("problem with nonzero gene count", m.Nonzero())
	}
}

func TestReconcileDeterministic(t *testing.T) {
	names := []string{"thrL", "thrA", "thrB", "thrC", "yaaX"}
	rows := []counts.Row{
		{Label: "thrA / thrB", Cells: []string{"1", "2"}},
		{Label: "thrC", Cells: []string{"3", "4"}},
		{Label: "yaaX ← / → thrL", Cells: []string{"5", "6"}},
	}
	conditions := []string{"Cef", "Str"}

	render := func() string {
		m, s := Reconcile(NewIndex(names), conditions, rows)
		out := fmt.Sprint(s)
		for _, gene := range m.Genes() {
			out += fmt.Sprint(gene, m.Row(gene))
		}
		return out
	}

	first := render()
	for i := 0; i < 10; i++ {
		if second := render(); second != first {
			t.Errorf("reconciliation is not deterministic:\n%s\n%s", first, second)
		}
	}
}
