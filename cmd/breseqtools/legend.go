package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/breseqTools/legend"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"strings"
)

func legendUsage(legendFlags *flag.FlagSet) {
	fmt.Print(
		"legend - draw a standalone colour legend for the condition tracks of a Circos plot\n" +
			"The default entries match the Circos config: LB #fc9272, Cef #9ecae1, Str #a1d99b, CefStr #bcbddc.\n\n" +
			"Usage:\n" +
			"  breseqtools legend [options] -o cef_str_legend.png\n\n" +
			"Options:\n")
	legendFlags.PrintDefaults()
}

// legendEntries is a custom type that gets filled by flag.Parse()
type legendEntries []legend.Entry

// String to satisfy flag.Value interface
func (e *legendEntries) String() string {
	names := make([]string, len(*e))
	for i := range *e {
		names[i] = (*e)[i].Name
	}
	return strings.Join(names, " ")
}

// Set to satisfy flag.Value interface
func (e *legendEntries) Set(value string) error {
	entry, err := legend.ParseEntry(value)
	if err != nil {
		return err
	}
	*e = append(*e, entry)
	return nil
}

func runLegend(args []string) {
	var err error
	legendFlags := flag.NewFlagSet("legend", flag.ExitOnError)

	var entries legendEntries
	output := legendFlags.String("o", "cef_str_legend.png", "Output image. Format is set by the extension (png, jpg, tiff, svg, pdf, eps).")
	dpi := legendFlags.Int("dpi", 600, "Resolution of raster output.")
	legendFlags.Var(&entries, "e", "Legend entry as name=#rrggbb. May be declared more than once with additional -e flags, in display order. Replaces the default entries.")

	err = legendFlags.Parse(args)
	exception.PanicOnErr(err)
	legendFlags.Usage = func() { legendUsage(legendFlags) }

	if *dpi <= 0 {
		legendFlags.Usage()
		errExit("\nERROR: -dpi must be positive")
	}
	if len(entries) == 0 {
		entries = legend.Default
	}

	err = legend.Render(entries, *output, *dpi)
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %s", err))
	}
	log.Println("Saved legend to:", *output)
}
