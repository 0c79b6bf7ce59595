package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/breseqTools/positions"
	"github.com/vertgenlab/gonomics/exception"
)

func exportUsage(exportFlags *flag.FlagSet) {
	fmt.Print(
		"export - write the coordinates of every named CDS in a single-record GenBank file\n\n" +
			"Usage:\n" +
			"  breseqtools export [options] -i sequence.gb -o positions_from_gb.csv\n\n" +
			"Options:\n")
	exportFlags.PrintDefaults()
}

func runExport(args []string) {
	var err error
	exportFlags := flag.NewFlagSet("export", flag.ExitOnError)

	input := exportFlags.String("i", "", "Input GenBank file. Must hold exactly one record.")
	output := exportFlags.String("o", "positions_from_gb.csv", "Output CSV with chr,start,end,gene columns. Coordinates are 1-based and inclusive.")
	bedFile := exportFlags.String("bed", "", "Also write the genes as a BED file (0-based, half-open).")
	verbose := exportFlags.Int("v", 0, "Level of verbosity in log.")

	err = exportFlags.Parse(args)
	exception.PanicOnErr(err)
	exportFlags.Usage = func() { exportUsage(exportFlags) }

	if *input == "" {
		exportFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}

	positions.Export(*input, *output, *bedFile, *verbose)
}
