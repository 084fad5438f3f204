package app

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindAndSimOpts(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "maze", "-scale", "2", "-opts", "w=20, h=15,algo=prim"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "maze" || cfg.Scale != 2 {
		t.Fatalf("parsed config = %+v", cfg)
	}

	want := map[string]string{"w": "20", "h": "15", "algo": "prim"}
	if diff := cmp.Diff(want, cfg.SimOpts()); diff != "" {
		t.Fatalf("SimOpts mismatch (-want +got):\n%s", diff)
	}
}

func TestSimOptsSkipsMalformedPairs(t *testing.T) {
	cfg := NewConfig()
	cfg.Opts = "w=20,broken,=5,h=10"
	want := map[string]string{"w": "20", "h": "10"}
	if diff := cmp.Diff(want, cfg.SimOpts()); diff != "" {
		t.Fatalf("SimOpts mismatch (-want +got):\n%s", diff)
	}
	cfg.Opts = ""
	if cfg.SimOpts() != nil {
		t.Fatal("empty opts must yield a nil map")
	}
}
