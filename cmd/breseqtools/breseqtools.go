package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.0"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands, in the order they are
// typically run.
var SubCommands = []*subcommand{
	{"export", runExport, "export CDS coordinates from a GenBank file"},            // formerly: export_genes_from_gb
	{"subtract", runSubtract, "remove ancestral mutations with gdtools"},           // formerly: subtract_ancestors_gd
	{"merge", runMerge, "merge gene positions with per-condition mutation counts"}, // formerly: merge_positions_with_counts
	{"upset", runUpset, "plot genes mutated per condition as an UpSet plot"},       // formerly: make_upset_plot
	{"legend", runLegend, "draw the colour legend for Circos condition tracks"},    // formerly: make_circos_legend
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: breseqtools (tools for breseq mutation calls from evolution experiments)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tbreseqtools <command> [options]\n\n" +
			"Commands:\n")

	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	command := commandMap()[flag.Arg(0)]
	if command == nil {
		flag.Usage()
		return
	}

	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
