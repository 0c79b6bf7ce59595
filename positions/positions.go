// Package positions reads and writes gene coordinate tables (chr,start,end,gene).
package positions

import (
	"encoding/csv"
	"fmt"
	"github.com/dasnellings/breseqTools/genbank"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"io"
	"log"
	"strconv"
	"strings"
)

// Header is the column layout of a positions file.
var Header = []string{"chr", "start", "end", "gene"}

// GenePosition is a gene with 1-based, inclusive coordinates.
type GenePosition struct {
	Chrom string
	Start int
	End   int
	Gene  string
}

// String returns the gene as a csv line without newline.
func (g GenePosition) String() string {
	return fmt.Sprintf("%s,%d,%d,%s", g.Chrom, g.Start, g.End, g.Gene)
}

// Less orders positions by chromosome, start, end, then gene name.
func Less(a, b GenePosition) bool {
	switch {
	case a.Chrom != b.Chrom:
		return a.Chrom < b.Chrom
	case a.Start != b.Start:
		return a.Start < b.Start
	case a.End != b.End:
		return a.End < b.End
	default:
		return a.Gene < b.Gene
	}
}

// Read a comma separated positions file. The header must name the chr,
// start, end, and gene columns, in any order. Missing columns are fatal.
func Read(filename string) []GenePosition {
	in := fileio.EasyOpen(filename)
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		log.Fatalf("ERROR: positions file %s is empty\n", filename)
	}
	exception.PanicOnErr(err)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\xef\xbb\xbf")
	}

	cols := make([]int, len(Header))
	for i := range Header {
		cols[i] = slices.Index(header, Header[i])
		if cols[i] == -1 {
			log.Fatalf("ERROR: positions file %s must have columns %s, found %s\n", filename, strings.Join(Header, ","), strings.Join(header, ","))
		}
	}

	var answer []GenePosition
	var curr GenePosition
	var rec []string
	for rec, err = r.Read(); err != io.EOF; rec, err = r.Read() {
		exception.PanicOnErr(err)
		line, _ := r.FieldPos(0)
		if len(rec) < len(header) {
			log.Fatalf("ERROR: malformed positions file: %s\nerror on line %d:\n%s\n", filename, line, strings.Join(rec, ","))
		}
		curr.Chrom = rec[cols[0]]
		curr.Gene = rec[cols[3]]
		curr.Start, err = strconv.Atoi(strings.TrimSpace(rec[cols[1]]))
		if err == nil {
			curr.End, err = strconv.Atoi(strings.TrimSpace(rec[cols[2]]))
		}
		if err != nil {
			log.Fatalf("ERROR: malformed positions file: %s\nerror on line %d: %s\n", filename, line, err)
		}
		answer = append(answer, curr)
	}

	err = in.Close()
	exception.PanicOnErr(err)
	return answer
}

// Write positions as a comma separated file with header.
func Write(filename string, genes []GenePosition) {
	out := fileio.EasyCreate(filename)
	w := csv.NewWriter(out)
	err := w.Write(Header)
	exception.PanicOnErr(err)
	for i := range genes {
		err = w.Write([]string{genes[i].Chrom, strconv.Itoa(genes[i].Start), strconv.Itoa(genes[i].End), genes[i].Gene})
		exception.PanicOnErr(err)
	}
	w.Flush()
	exception.PanicOnErr(w.Error())
	err = out.Close()
	exception.PanicOnErr(err)
}

// ToBed converts a gene to a bed record with 0-based, half-open coordinates.
func ToBed(g GenePosition) bed.Bed {
	return bed.Bed{Chrom: g.Chrom, ChromStart: g.Start - 1, ChromEnd: g.End, Name: g.Gene, FieldsInitialized: 4}
}

// WriteBed writes positions as a bed file with the gene in the name field.
func WriteBed(filename string, genes []GenePosition) {
	out := fileio.EasyCreate(filename)
	for i := range genes {
		bed.WriteBed(out, ToBed(genes[i]))
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// FromRecord collects the CDS features of a GenBank record. A feature is
// named by its gene qualifier, or its locus_tag if it has no gene. Features
// with neither are skipped.
func FromRecord(rec genbank.Record) []GenePosition {
	var answer []GenePosition
	var curr GenePosition
	var err error
	chrom := rec.ID()
	for _, f := range rec.Features {
		if f.Type != "CDS" {
			continue
		}
		curr.Gene = f.Qualifier("gene")
		if curr.Gene == "" {
			curr.Gene = f.Qualifier("locus_tag")
		}
		if curr.Gene == "" {
			continue
		}
		curr.Chrom = chrom
		curr.Start, curr.End, err = f.Span()
		if err != nil {
			log.Fatalf("ERROR: could not read location of CDS %s in %s: %s\n", curr.Gene, rec.Name, err)
		}
		answer = append(answer, curr)
	}
	return answer
}
