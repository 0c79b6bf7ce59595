// Package upset summarises which genes are mutated under which conditions
// and draws the intersections as an UpSet plot.
package upset

import (
	"encoding/csv"
	"github.com/dasnellings/breseqTools/counts"
	"github.com/dasnellings/breseqTools/reconcile"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"log"
	"sort"
	"strings"
)

// Sets lists, for each category, the genes it contains.
type Sets struct {
	Categories []string
	Members    [][]string
}

// Contents builds one set per condition of a gene x condition table holding
// the genes with a count above zero, in table order. Cells that are not
// numbers count as zero.
func Contents(t counts.Table) Sets {
	s := Sets{Categories: t.Conditions, Members: make([][]string, len(t.Conditions))}
	for i := range t.Conditions {
		for _, row := range t.Rows {
			if i < len(row.Cells) && reconcile.Coerce(row.Cells[i]) > 0 && !slices.Contains(s.Members[i], row.Label) {
				s.Members[i] = append(s.Members[i], row.Label)
			}
		}
	}
	return s
}

// Membership records which categories contain an element.
type Membership struct {
	ID string
	In []bool
}

// Degree is the number of categories containing the element.
func (m Membership) Degree() int {
	var ans int
	for _, in := range m.In {
		if in {
			ans++
		}
	}
	return ans
}

// Memberships returns one entry per distinct element of s, ordered by first
// appearance when walking the categories in order.
func Memberships(s Sets) []Membership {
	var answer []Membership
	pos := make(map[string]int)
	var j int
	var found bool
	for i := range s.Categories {
		for _, id := range s.Members[i] {
			if j, found = pos[id]; !found {
				j = len(answer)
				pos[id] = j
				answer = append(answer, Membership{ID: id, In: make([]bool, len(s.Categories))})
			}
			answer[j].In[i] = true
		}
	}
	return answer
}

// WriteMemberships writes one row per element with a True/False column per
// category followed by the element id.
func WriteMemberships(filename string, categories []string, m []Membership) {
	out := fileio.EasyCreate(filename)
	w := csv.NewWriter(out)
	err := w.Write(append(append([]string{}, categories...), "id"))
	exception.PanicOnErr(err)
	line := make([]string, len(categories)+1)
	var j int
	for i := range m {
		for j = range m[i].In {
			line[j] = "False"
			if m[i].In[j] {
				line[j] = "True"
			}
		}
		line[len(categories)] = m[i].ID
		err = w.Write(line)
		exception.PanicOnErr(err)
	}
	w.Flush()
	exception.PanicOnErr(w.Error())
	err = out.Close()
	exception.PanicOnErr(err)
}

// Intersection is the number of elements found in exactly the categories
// flagged in Pattern.
type Intersection struct {
	Pattern []bool
	Size    int
	Degree  int
}

// Name lists the categories of the intersection joined by " & ".
func (x Intersection) Name(categories []string) string {
	var names []string
	for i := range x.Pattern {
		if x.Pattern[i] {
			names = append(names, categories[i])
		}
	}
	return strings.Join(names, " & ")
}

// Intersections counts elements per membership pattern. The result is
// ordered by degree, then by pattern with earlier categories first.
func Intersections(m []Membership) []Intersection {
	var answer []Intersection
	pos := make(map[string]int)
	var key string
	var j int
	var found bool
	for i := range m {
		key = patternKey(m[i].In)
		if j, found = pos[key]; !found {
			j = len(answer)
			pos[key] = j
			answer = append(answer, Intersection{Pattern: m[i].In, Degree: m[i].Degree()})
		}
		answer[j].Size++
	}

	sort.Slice(answer, func(a, b int) bool {
		if answer[a].Degree != answer[b].Degree {
			return answer[a].Degree < answer[b].Degree
		}
		return patternKey(answer[a].Pattern) < patternKey(answer[b].Pattern)
	})
	return answer
}

// patternKey encodes a pattern so that string order puts patterns with
// earlier categories first.
func patternKey(p []bool) string {
	b := make([]byte, len(p))
	for i := range p {
		b[i] = '1'
		if p[i] {
			b[i] = '0'
		}
	}
	return string(b)
}

// Upset reads a gene x condition count matrix, writes the membership table
// to outCsv when it is not empty and draws the UpSet plot to outPlot.
func Upset(matrixFile, outPlot, outCsv string, verbose int) {
	t := counts.ReadIndexed(matrixFile)
	s := Contents(t)
	m := Memberships(s)
	inter := Intersections(m)

	if verbose > 0 {
		for i := range s.Categories {
			log.Printf("%s: %d genes", s.Categories[i], len(s.Members[i]))
		}
		for i := range inter {
			log.Printf("%s: %d", inter[i].Name(s.Categories), inter[i].Size)
		}
	}

	if outCsv != "" {
		WriteMemberships(outCsv, s.Categories, m)
		log.Printf("Wrote memberships: %s", outCsv)
	}

	err := Render(s, inter, outPlot)
	if err != nil {
		log.Fatalf("ERROR: could not draw %s: %s", outPlot, err)
	}
	log.Printf("Wrote UpSet plot: %s", outPlot)
}
