package genbank

import (
	"testing"
)

func TestRead(t *testing.T) {
	records := Read("testdata/sequence.gb")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, found %d", len(records))
	}
	rec := records[0]
	if rec.Name != "NC_000913" || rec.Length != 1500 || rec.Accession != "NC_000913" || rec.ID() != "NC_000913.3" {
		t.Error("problem reading record header", rec.Name, rec.Length, rec.Accession, rec.Version)
	}
	if len(rec.Features) != 8 {
		t.Fatalf("expected 8 features, found %d", len(rec.Features))
	}

	thrL := rec.Features[2]
	if thrL.Type != "CDS" || thrL.Qualifier("gene") != "thrL" || thrL.Qualifier("locus_tag") != "b0001" {
		t.Error("problem reading qualifiers", thrL)
	}
	if thrL.Qualifier("note") != `leader peptide; "thr" operon attenuator` {
		t.Errorf("problem joining multi-line qualifier: %q", thrL.Qualifier("note"))
	}
	if thrL.Qualifier("translation") != "MKRISTTITTTITITTGNGAG" {
		t.Errorf("problem reading translation: %q", thrL.Qualifier("translation"))
	}
	if len(thrL.Keys()) != 4 || thrL.Keys()[2] != "note" {
		t.Error("problem with qualifier order", thrL.Keys())
	}

	if rec.Features[3].Location != "complement(337..>400)" {
		t.Errorf("problem joining multi-line location: %q", rec.Features[3].Location)
	}
	if rec.Features[4].Qualifier("translation") != "MAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAKKKK" {
		t.Errorf("translation continuation should not add spaces: %q", rec.Features[4].Qualifier("translation"))
	}
	if rec.Features[7].Qualifier("gene") != "" {
		t.Error("missing qualifier should be empty")
	}
}

func TestReadMultiple(t *testing.T) {
	records := Read("testdata/two.gb")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, found %d", len(records))
	}
	if records[0].ID() != "pA" || records[1].ID() != "AB000001" {
		t.Error("problem with record ids", records[0].ID(), records[1].ID())
	}
	start, end, err := records[1].Features[0].Span()
	if err != nil || start != 5 || end != 30 {
		t.Error("remote references should not count towards the span", start, end, err)
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		location   string
		start, end int
	}{
		{"190..255", 190, 255},
		{"467", 467, 467},
		{"complement(337..>400)", 337, 400},
		{"join(800..900,1000..1100)", 800, 1100},
		{"complement(join(<1200..1300,1400..1450))", 1200, 1450},
		{"join(4641000..4641652,1..100)", 1, 4641652},
		{"order(10..20,5..8)", 5, 20},
	}

	for _, test := range tests {
		start, end, err := Feature{Location: test.location}.Span()
		if err != nil || start != test.start || end != test.end {
			t.Errorf("problem with span of %s. expected: %d-%d actual: %d-%d (%v)", test.location, test.start, test.end, start, end, err)
		}
	}

	if _, _, err := (Feature{Location: "complement()"}).Span(); err == nil {
		t.Error("expected error for location without coordinates")
	}
}
