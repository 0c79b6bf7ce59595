// Package genbank reads the header and feature table of GenBank flat files.
// Sequence data (ORIGIN) is skipped.
package genbank

import (
	"fmt"
	"github.com/carbocation/pfx"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Record is a single LOCUS entry.
type Record struct {
	Name      string // LOCUS name
	Length    int
	Accession string
	Version   string
	Features  []Feature
}

// ID returns the versioned accession of the record, falling back on the
// accession and then on the locus name.
func (r Record) ID() string {
	switch {
	case r.Version != "":
		return r.Version
	case r.Accession != "":
		return r.Accession
	default:
		return r.Name
	}
}

// Feature is one entry of the feature table.
type Feature struct {
	Type       string
	Location   string
	Qualifiers map[string][]string // values keep their quotes
	order      []string
}

// Qualifier returns the first value of a qualifier with quotes removed, or
// the empty string if the feature does not carry it.
func (f Feature) Qualifier(key string) string {
	v := f.Qualifiers[key]
	if len(v) == 0 {
		return ""
	}
	return unquote(v[0])
}

// Keys returns qualifier names in the order they were first seen.
func (f Feature) Keys() []string {
	return f.order
}

var (
	remoteRef = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_]*(\.\d+)?:[<>]?\d+(\.\.[<>]?\d+)?`)
	number    = regexp.MustCompile(`\d+`)
)

// Span returns the 1-based, inclusive outer bounds of the feature location.
// Strand, joins, and partial markers do not change the bounds.
func (f Feature) Span() (start, end int, err error) {
	loc := remoteRef.ReplaceAllString(f.Location, "")
	nums := number.FindAllString(loc, -1)
	if len(nums) == 0 {
		return 0, 0, pfx.Err(fmt.Errorf("no coordinates in location %q", f.Location))
	}
	var v int
	for i := range nums {
		v, err = strconv.Atoi(nums[i])
		if err != nil {
			return 0, 0, pfx.Err(err)
		}
		if i == 0 || v < start {
			start = v
		}
		if v > end {
			end = v
		}
	}
	return start, end, nil
}

const (
	featureKeyCol = 5
	qualifierCol  = 21
)

// Read all records in a GenBank file.
func Read(filename string) []Record {
	in := fileio.EasyOpen(filename)
	var answer []Record
	var curr *Record
	var feat *Feature
	var qualKey string // qualifier whose quoted value is still open
	var lastKey string
	var inFeatures bool
	var line, text string
	var words []string
	var done bool
	var lineNum int

	finishFeature := func() {
		if feat != nil {
			curr.Features = append(curr.Features, *feat)
			feat = nil
		}
		qualKey, lastKey = "", ""
	}

	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		lineNum++
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if line == "//" || strings.HasPrefix(line, "// ") {
			if curr != nil {
				finishFeature()
				answer = append(answer, *curr)
			}
			curr, inFeatures = nil, false
			continue
		}

		if line[0] != ' ' {
			words = strings.Fields(line)
			if words[0] == "LOCUS" {
				curr = &Record{}
				if len(words) > 1 {
					curr.Name = words[1]
				}
				if len(words) > 3 && (words[3] == "bp" || words[3] == "aa") {
					curr.Length, _ = strconv.Atoi(words[2])
				}
				continue
			}
			if curr == nil {
				log.Fatalf("ERROR: malformed GenBank file: %s\nexpected LOCUS on line %d:\n%s\n", filename, lineNum, line)
			}
			finishFeature()
			inFeatures = words[0] == "FEATURES"
			switch {
			case words[0] == "ACCESSION" && len(words) > 1:
				curr.Accession = words[1]
			case words[0] == "VERSION" && len(words) > 1:
				curr.Version = words[1]
			}
			continue
		}

		if !inFeatures {
			continue
		}

		if len(line) > featureKeyCol && line[featureKeyCol] != ' ' && strings.TrimSpace(line[:featureKeyCol]) == "" {
			finishFeature()
			words = strings.Fields(line)
			feat = &Feature{Type: words[0], Qualifiers: make(map[string][]string)}
			if len(words) > 1 {
				feat.Location = strings.Join(words[1:], "")
			}
			continue
		}

		if feat == nil || len(line) <= qualifierCol {
			log.Fatalf("ERROR: malformed GenBank feature table: %s\nerror on line %d:\n%s\n", filename, lineNum, line)
		}
		text = strings.TrimSpace(line)

		switch {
		case qualKey != "":
			appendQualifier(feat, qualKey, text)
			if closed(lastValue(feat, qualKey)) {
				qualKey = ""
			}
		case strings.HasPrefix(text, "/"):
			lastKey, _, _ = strings.Cut(text[1:], "=")
			qualKey = addQualifier(feat, text[1:])
		case lastKey == "":
			feat.Location += text
		default:
			appendQualifier(feat, lastKey, text)
		}
	}

	if curr != nil {
		finishFeature()
		answer = append(answer, *curr)
	}

	err := in.Close()
	exception.PanicOnErr(err)
	return answer
}

// addQualifier parses `key="value` and returns key if the value is an
// unterminated quoted string.
func addQualifier(f *Feature, text string) string {
	key, value, _ := strings.Cut(text, "=")
	if _, found := f.Qualifiers[key]; !found {
		f.order = append(f.order, key)
	}
	f.Qualifiers[key] = append(f.Qualifiers[key], value)
	if strings.HasPrefix(value, `"`) && !closed(value) {
		return key
	}
	return ""
}

func appendQualifier(f *Feature, key, text string) {
	values := f.Qualifiers[key]
	last := values[len(values)-1]
	if key != "translation" {
		last += " "
	}
	values[len(values)-1] = last + text
}

func lastValue(f *Feature, key string) string {
	values := f.Qualifiers[key]
	return values[len(values)-1]
}

// closed reports whether a value that opens with a quote has its closing
// quote. Embedded quotes are doubled, so the count is even once closed.
func closed(value string) bool {
	return len(value) > 1 && strings.Count(value, `"`)%2 == 0
}

func unquote(value string) string {
	if len(value) > 1 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return strings.ReplaceAll(value, `""`, `"`)
}
