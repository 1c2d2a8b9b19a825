package cmd

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avrile/payments"
)

// writeInput writes a transactions file in a temp dir and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("could not write input file: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	path := writeInput(t, "type,client,tx,amount\n"+
		"deposit,1,1,10.0\n"+
		"withdrawal,1,2,3.0\n"+
		"withdrawal,1,3,100.0\n") // overdraft, ignored

	var diag bytes.Buffer
	ledger, stats, err := processFile(path, log.New(&diag, "", 0))
	if err != nil {
		t.Fatalf("processFile failed: %v", err)
	}
	if stats.Applied != 2 || stats.Ignored != 1 {
		t.Errorf("stats = %+v, want 2 applied, 1 ignored", stats)
	}
	if !strings.Contains(diag.String(), "insufficient funds") {
		t.Errorf("missing overdraft warning in %q", diag.String())
	}

	var out strings.Builder
	if err := payments.EncodeSnapshots(&out, ledger.Snapshots()); err != nil {
		t.Fatalf("EncodeSnapshots failed: %v", err)
	}
	want := "client,available,held,total,locked\n1,7.0000,0.0000,7.0000,false\n"
	if got := out.String(); got != want {
		t.Errorf("output =\n%s\nwant:\n%s", got, want)
	}
}

func TestProcessFile_FatalRow(t *testing.T) {
	path := writeInput(t, "type,client,tx,amount\n"+
		"deposit,1,1,10.0\n"+
		"deposit,1,1,10.0\n") // reused tx id

	_, _, err := processFile(path, log.New(&bytes.Buffer{}, "", 0))
	if err == nil {
		t.Fatal("reused tx id should abort the run")
	}
	if !strings.Contains(err.Error(), "duplicate transaction id") {
		t.Errorf("error = %v, want a duplicate-id message", err)
	}
}

func TestProcessFile_MissingFile(t *testing.T) {
	if _, _, err := processFile(filepath.Join(t.TempDir(), "nope.csv"), log.Default()); err == nil {
		t.Error("missing input file should fail")
	}
}
