package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/dasnellings/breseqTools/subtract"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
)

func subtractUsage(subtractFlags *flag.FlagSet) {
	fmt.Print(
		"subtract - remove mutations found in the ancestor from each evolved sample with 'gdtools SUBTRACT'\n" +
			"Each sample folder holds breseq output at <sample>/output/output.gd. Samples 1-5 use the -early ancestor and 6-10 the -late ancestor.\n\n" +
			"Usage:\n" +
			"  breseqtools subtract [options] -d breseq_results\n\n" +
			"Options:\n")
	subtractFlags.PrintDefaults()
}

func runSubtract(args []string) {
	var err error
	subtractFlags := flag.NewFlagSet("subtract", flag.ExitOnError)

	baseDir := subtractFlags.String("d", "", "Directory with one breseq output folder per sample.")
	outDir := subtractFlags.String("o", "", "Output directory for filtered genome diffs. Default: <d>/filtered_gd")
	early := subtractFlags.String("early", subtract.DefaultAncestors.Early, "Ancestor folder for samples 1-5.")
	late := subtractFlags.String("late", subtract.DefaultAncestors.Late, "Ancestor folder for samples 6-10.")
	gdtools := subtractFlags.String("gdtools", "gdtools", "Path to the gdtools executable.")
	dryRun := subtractFlags.Bool("dryRun", false, "Print the gdtools commands without running them.")
	verbose := subtractFlags.Int("v", 0, "Level of verbosity in log.")

	err = subtractFlags.Parse(args)
	exception.PanicOnErr(err)
	subtractFlags.Usage = func() { subtractUsage(subtractFlags) }

	if *baseDir == "" {
		subtractFlags.Usage()
		errExit("\nERROR: must have input for -d")
	}

	var r subtract.Runner = subtract.ExecRunner{Path: *gdtools}
	if *dryRun {
		r = subtract.DryRunner{W: os.Stdout}
	}

	a := subtract.Ancestors{Early: *early, Late: *late}
	jobs, errs := subtract.Subtract(context.Background(), r, *baseDir, *outDir, a, *verbose)
	log.Printf("Finished %d of %d subtractions\n", len(jobs)-len(errs), len(jobs))
	if len(jobs) == 0 && len(errs) > 0 {
		errExit(fmt.Sprintf("ERROR: %s", errs[0]))
	}
}
