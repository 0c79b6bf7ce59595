package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/breseqTools/merge"
	"github.com/vertgenlab/gonomics/exception"
)

func mergeUsage(mergeFlags *flag.FlagSet) {
	fmt.Print(
		"merge - attach per-condition mutation counts to gene coordinates\n" +
			"Count table labels may name several genes (e.g. 'ais ← / → arnB'); each named gene receives the full row of counts.\n\n" +
			"Usage:\n" +
			"  breseqtools merge [options] -p positions.csv -c counts.csv -o circos_heatmap_all.csv -t circos_heatmap_all.tsv\n\n" +
			"Options:\n")
	mergeFlags.PrintDefaults()
}

func runMerge(args []string) {
	var err error
	mergeFlags := flag.NewFlagSet("merge", flag.ExitOnError)

	positionsFile := mergeFlags.String("p", "", "Gene positions CSV with chr,start,end,gene columns (see 'breseqtools export').")
	countsFile := mergeFlags.String("c", "", "Mutation count table, comma or tab delimited. The gene label column is detected from the header.")
	outCsv := mergeFlags.String("o", "circos_heatmap_all.csv", "Output CSV.")
	outTsv := mergeFlags.String("t", "circos_heatmap_all.tsv", "Output TSV for Circos. Not written if empty.")
	verbose := mergeFlags.Int("v", 0, "Level of verbosity in log. 1 adds per-condition totals and a mutation profile along the genome.")

	err = mergeFlags.Parse(args)
	exception.PanicOnErr(err)
	mergeFlags.Usage = func() { mergeUsage(mergeFlags) }

	if *positionsFile == "" || *countsFile == "" {
		mergeFlags.Usage()
		errExit("\nERROR: must have inputs for -p and -c")
	}

	merge.Merge(*positionsFile, *countsFile, *outCsv, *outTsv, *verbose)
}
