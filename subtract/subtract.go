// Package subtract removes mutations present in an ancestral population from
// the breseq calls of evolved samples using gdtools SUBTRACT.
package subtract

import (
	"context"
	"fmt"
	"github.com/carbocation/pfx"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// GdPath is the location of breseq's genome diff inside a sample folder.
var GdPath = filepath.Join("output", "output.gd")

// Ancestors names the ancestor folders for each block of sample numbers.
type Ancestors struct {
	Early string // samples 1-5
	Late  string // samples 6-10
}

// DefaultAncestors are the ancestor populations of the evolution experiment.
var DefaultAncestors = Ancestors{Early: "MG_S1", Late: "AH_S2"}

// For returns the ancestor folder for a sample number, or false if the
// number is outside both blocks.
func (a Ancestors) For(n int) (string, bool) {
	switch {
	case n >= 1 && n <= 5:
		return a.Early, true
	case n >= 6 && n <= 10:
		return a.Late, true
	default:
		return "", false
	}
}

var digits = regexp.MustCompile(`\d+`)

// SampleNumber returns the first integer embedded in a folder name, e.g. 7
// for "Cef7".
func SampleNumber(name string) (int, bool) {
	s := digits.FindString(name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Job is a single subtraction of an ancestor from a sample.
type Job struct {
	Sample   string
	Input    string
	Ancestor string
	Output   string
}

// Args returns the gdtools arguments for the job.
func (j Job) Args() []string {
	return []string{"SUBTRACT", "-o", j.Output, j.Input, j.Ancestor}
}

func (j Job) String() string {
	return "gdtools " + strings.Join(j.Args(), " ")
}

// Plan lists the subtraction jobs for the sample folders in baseDir, in
// directory order. Folders without a genome diff, without a sample number,
// outside the numbered blocks, or that are ancestors themselves are skipped.
func Plan(baseDir, outDir string, a Ancestors, verbose int) ([]Job, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var answer []Job
	var input, ancestor string
	var n int
	var found bool
	for _, e := range entries {
		name := e.Name()
		input = filepath.Join(baseDir, name, GdPath)
		if !isFile(input) {
			continue
		}
		if name == a.Early || name == a.Late {
			if verbose > 0 {
				log.Printf("skipping ancestor folder %s\n", name)
			}
			continue
		}
		if n, found = SampleNumber(name); !found {
			if verbose > 0 {
				log.Printf("skipping %s: no sample number in folder name\n", name)
			}
			continue
		}
		if ancestor, found = a.For(n); !found {
			if verbose > 0 {
				log.Printf("skipping %s: sample number %d has no ancestor\n", name, n)
			}
			continue
		}
		answer = append(answer, Job{
			Sample:   name,
			Input:    input,
			Ancestor: filepath.Join(baseDir, ancestor, GdPath),
			Output:   filepath.Join(outDir, name+".gd"),
		})
	}
	return answer, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Runner executes a subtraction job.
type Runner interface {
	Run(ctx context.Context, j Job) error
}

// ExecRunner runs jobs with the gdtools binary at Path.
type ExecRunner struct {
	Path string
}

func (r ExecRunner) Run(ctx context.Context, j Job) error {
	cmd := exec.CommandContext(ctx, r.Path, j.Args()...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w\n%s", j.Sample, err, out))
	}
	return nil
}

// DryRunner prints each job instead of running it.
type DryRunner struct {
	W io.Writer
}

func (r DryRunner) Run(ctx context.Context, j Job) error {
	_, err := fmt.Fprintln(r.W, j)
	return err
}

// Subtract plans and runs the subtraction for every sample in baseDir. A
// failing job is logged and does not stop the others. The jobs that were
// attempted and the errors of the failed ones are returned.
func Subtract(ctx context.Context, r Runner, baseDir, outDir string, a Ancestors, verbose int) ([]Job, []error) {
	if outDir == "" {
		outDir = filepath.Join(baseDir, "filtered_gd")
	}
	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		return nil, []error{pfx.Err(err)}
	}

	jobs, err := Plan(baseDir, outDir, a, verbose)
	if err != nil {
		return nil, []error{err}
	}

	var errs []error
	for _, j := range jobs {
		log.Printf("Subtracting %s from %s -> %s\n", filepath.Base(filepath.Dir(filepath.Dir(j.Ancestor))), j.Sample, j.Output)
		if err = r.Run(ctx, j); err != nil {
			log.Printf("WARNING: %s\n", err)
			errs = append(errs, err)
		}
	}
	return jobs, errs
}
