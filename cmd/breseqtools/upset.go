package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/breseqTools/upset"
	"github.com/vertgenlab/gonomics/exception"
)

func upsetUsage(upsetFlags *flag.FlagSet) {
	fmt.Print(
		"upset - plot which genes are mutated under which conditions as an UpSet plot\n" +
			"Input is a gene x condition matrix whose first column is the gene. Genes with a count above 0 belong to a condition.\n\n" +
			"Usage:\n" +
			"  breseqtools upset [options] -i gene_condition_matrix.csv -o upset_plot.svg -m intersection_data.csv\n\n" +
			"Options:\n")
	upsetFlags.PrintDefaults()
}

func runUpset(args []string) {
	var err error
	upsetFlags := flag.NewFlagSet("upset", flag.ExitOnError)

	input := upsetFlags.String("i", "", "Gene x condition count matrix, comma or tab delimited.")
	output := upsetFlags.String("o", "upset_plot.svg", "Output image. Format is set by the extension.")
	memberships := upsetFlags.String("m", "", "Also write the True/False membership of each gene per condition to this CSV.")
	verbose := upsetFlags.Int("v", 0, "Level of verbosity in log.")

	err = upsetFlags.Parse(args)
	exception.PanicOnErr(err)
	upsetFlags.Usage = func() { upsetUsage(upsetFlags) }

	if *input == "" {
		upsetFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}

	upset.Upset(*input, *output, *memberships, *verbose)
}
