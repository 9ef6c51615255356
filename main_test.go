package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/virial.report/internal/db"
)

func writeTestCatalog(t *testing.T, dir string) string {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	var sb strings.Builder
	sb.WriteString("objid,ra,dec,specz,proj_sep\n")
	for i := 0; i < 50; i++ {
		z := 0.05 + 0.01*rng.NormFloat64()
		fmt.Fprintf(&sb, "obj-%02d,%.4f,%.4f,%.6f,%.3f\n",
			i, 150.0+rng.Float64(), 2.0+rng.Float64(), z, 8*rng.Float64())
	}
	sb.WriteString("stray,151.0,2.5,4.800000,3.000\n")

	path := filepath.Join(dir, "catalog.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write test catalog: %v", err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	config := Config{
		CatalogFile: writeTestCatalog(t, dir),
		OutputDir:   filepath.Join(dir, "out"),
		DBPath:      filepath.Join(dir, "runs.db"),
		ExportCSV:   true,
		ExportJSON:  true,
		ExportHTML:  true,
	}

	if err := run(config); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	for _, name := range []string{"members.csv", "summary.json", "report.html"} {
		if _, err := os.Stat(filepath.Join(config.OutputDir, name)); err != nil {
			t.Errorf("Missing export %s: %v", name, err)
		}
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		t.Fatalf("open run database: %v", err)
	}
	defer database.Close()

	runs, err := database.ListRuns()
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 stored run, got %d", len(runs))
	}
	if runs[0].Summary.Members != 50 {
		t.Errorf("Expected the stray galaxy filtered out of 51 objects, got %d members", runs[0].Summary.Members)
	}
}

func TestRunMissingCatalog(t *testing.T) {
	err := run(Config{CatalogFile: filepath.Join(t.TempDir(), "nope.csv")})
	if err == nil {
		t.Fatal("Expected error for missing catalog file")
	}
}

func TestRunBadSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("objid,ra,dec\n1,2,3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := run(Config{CatalogFile: path, OutputDir: dir})
	if err == nil {
		t.Fatal("Expected schema error")
	}
	if !strings.Contains(err.Error(), "missing column") {
		t.Errorf("Expected a missing-column error, got: %v", err)
	}
}
