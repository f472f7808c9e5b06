package util

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

var updateSnapshots = flag.Bool("update-snapshots", false, "update testdata snapshots")

// Snapshot compares the JSON rendering of v against testdata/<test name>.json;
// run with -update-snapshots to (re)create the file instead.
func Snapshot[V any](t *testing.T, v V) {
	t.Helper()
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %s (%v)", err, v)
	}
	p, actual := filepath.Join("testdata", t.Name()+".json"), string(bs)
	if *updateSnapshots {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("failed to create testdata: %s", err)
		} else if err := os.WriteFile(p, bs, 0644); err != nil {
			t.Fatalf("failed to write snapshot: %s", err)
		}
		return
	}
	if bs, err := os.ReadFile(p); err != nil && !os.IsNotExist(err) {
		t.Fatalf("failed to read snapshot: %s", err)
	} else if expected := string(bs); actual != expected {
		t.Fatalf("snapshot does not match (actual != expected):\n%s\n----------\n%s", actual, expected)
	}
}
