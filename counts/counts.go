// Package counts reads wide mutation count tables where one column holds a
// free-text gene label and every other column holds a per-condition count.
package counts

import (
	"bytes"
	"encoding/csv"
	"github.com/csimplestring/go-csv/detector"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"io"
	"log"
	"strings"
)

// Row is a single line of a count table. Cells are aligned with the
// Conditions of the Table the row came from and are kept as raw text.
type Row struct {
	Label string
	Cells []string
}

// Table is a count table with its label column resolved.
type Table struct {
	Header     []string
	Label      Column
	Conditions []string
	Rows       []Row
}

// Read a count table and pick its label column with DetectLabelColumn.
func Read(filename string) Table {
	header, records := ReadRecords(filename)
	return NewTable(header, records, DetectLabelColumn(header, records))
}

// ReadIndexed reads a count table whose first column is the row index,
// e.g. a gene x condition matrix.
func ReadIndexed(filename string) Table {
	header, records := ReadRecords(filename)
	return NewTable(header, records, Column{Index: 0, Name: header[0], Rule: LabelFirstColumn})
}

// ReadRecords returns the header and body of a delimited file. Comma and tab
// delimited files are both accepted.
func ReadRecords(filename string) (header []string, records [][]string) {
	in := fileio.EasyOpen(filename)
	data, err := io.ReadAll(in)
	exception.PanicOnErr(err)
	err = in.Close()
	exception.PanicOnErr(err)

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		log.Fatalf("ERROR: could not parse %s: %s\n", filename, err)
	}
	if len(all) == 0 || len(all[0]) == 0 {
		log.Fatalf("ERROR: %s has no header row\n", filename)
	}
	return all[0], all[1:]
}

// NewTable splits records into label and condition cells. Short records are
// padded with empty cells and surplus cells are ignored.
func NewTable(header []string, records [][]string, label Column) Table {
	t := Table{Header: header, Label: label}
	for i := range header {
		if i != label.Index {
			t.Conditions = append(t.Conditions, header[i])
		}
	}

	t.Rows = make([]Row, 0, len(records))
	var curr Row
	var j int
	for _, rec := range records {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue // blank line
		}
		curr = Row{Cells: make([]string, 0, len(t.Conditions))}
		for j = range header {
			if j == label.Index {
				curr.Label = cell(rec, j)
				continue
			}
			curr.Cells = append(curr.Cells, cell(rec, j))
		}
		t.Rows = append(t.Rows, curr)
	}
	return t
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// sniffDelimiter returns tab for tab delimited data and comma for anything
// else. Comma wins when the detector accepts both. The header line decides
// when the detector has no opinion.
func sniffDelimiter(data []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(data), '"')
	// candidate order from the detector is not stable
	switch {
	case slices.Contains(delimiters, ","):
		return ','
	case slices.Contains(delimiters, "\t"):
		return '\t'
	}
	header, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.IndexByte(header, '\t') >= 0 && bytes.IndexByte(header, ',') < 0 {
		return '\t'
	}
	return ','
}
