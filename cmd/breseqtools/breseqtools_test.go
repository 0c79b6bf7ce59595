package main

import (
	"github.com/dasnellings/breseqTools/legend"
	"testing"
)

func TestCommandMap(t *testing.T) {
	m := commandMap()
	for _, name := range []string{"export", "subtract", "merge", "upset", "legend"} {
		if m[name] == nil {
			t.Errorf("subcommand %s is not registered", name)
		}
	}
	if len(m) != len(SubCommands) {
		t.Error("duplicate subcommand names")
	}
}

func TestLegendEntries(t *testing.T) {
	var e legendEntries
	for _, s := range []string{"Tet=#31a354", "Kan=#fd8d3c"} {
		if err := e.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	if e.String() != "Tet Kan" {
		t.Error("problem collecting legend entries", e.String())
	}
	if err := e.Set("Tet"); err == nil {
		t.Error("expected error for entry without colour")
	}
	if len(e) != 2 || len(legend.Default) != 4 {
		t.Error("unexpected entries", e)
	}
}
