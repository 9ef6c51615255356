package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/virial.report/internal/catalog"
	"github.com/banshee-data/virial.report/internal/cluster"
)

func testResult() *cluster.Result {
	members := []cluster.Member{
		{
			Object:       catalog.Object{ObjID: "a", RA: 150.1, Dec: 2.1, SpecZ: 0.049, ProjSep: 1.5, NumObs: 2},
			RecessionKms: 14689.8, PeculiarKms: -285.0,
		},
		{
			Object:       catalog.Object{ObjID: "b", RA: 150.2, Dec: 2.2, SpecZ: 0.051, ProjSep: 3.0, NumObs: 1},
			RecessionKms: 15289.4, PeculiarKms: 285.0,
		},
	}
	return &cluster.Result{
		Summary: cluster.Summary{
			RawRows: 3, Objects: 2, Members: 2,
			ZMean: 0.05, ZStddev: 0.001, ZLow: 0.047, ZHigh: 0.053,
			SystemicZ: 0.05, DispersionKms: 285.0,
			ComovingMpc: 216.0, AngularDiamMpc: 205.7,
			MaxSepArcmin: 3.0, DiameterMpc: 0.36,
			MassKg: 1.2e44, MassMsun: 6.0e13,
		},
		Members: members,
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, testResult())
	out := buf.String()

	for _, want := range []string{
		"unique objects:      2",
		"systemic redshift:   0.050000",
		"velocity dispersion: 285.0 km/s",
		"physical diameter:   0.36 Mpc",
		"Msun",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMembersCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMembersCSV(&buf, testResult().Members); err != nil {
		t.Fatalf("WriteMembersCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "objid,ra,dec,specz,proj_sep,num_obs,v_rec_kms,v_pec_kms") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "a,") {
		t.Errorf("Unexpected first row: %s", lines[1])
	}
}

func TestExportSummaryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := ExportSummaryJSON(path, testResult().Summary); err != nil {
		t.Fatalf("ExportSummaryJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported JSON: %v", err)
	}
	var s cluster.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if s.DispersionKms != 285.0 {
		t.Errorf("Expected dispersion 285.0 after roundtrip, got %v", s.DispersionKms)
	}
}

func TestGeneratePlots(t *testing.T) {
	dir := t.TempDir()
	n, err := GeneratePlots(dir, testResult().Members)
	if err != nil {
		t.Fatalf("GeneratePlots returned error: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 plots, got %d", n)
	}

	for _, name := range []string{"redshift_hist.png", "velocity_hist.png", "separation_box.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Missing plot %s: %v", name, err)
		}
	}
}

func TestExportHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := ExportHTMLReport(path, testResult()); err != nil {
		t.Fatalf("ExportHTMLReport returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported HTML: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "echarts") {
		t.Error("HTML report should embed echarts")
	}
	if !strings.Contains(out, "Member Redshift Distribution") {
		t.Error("HTML report should contain the redshift histogram")
	}
}

func TestBinValues(t *testing.T) {
	labels, counts := binValues([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	if len(labels) != 5 || len(counts) != 5 {
		t.Fatalf("Expected 5 bins, got %d labels, %d counts", len(labels), len(counts))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Errorf("Bin counts should sum to 10, got %d", total)
	}

	// Degenerate distribution collapses to one bin.
	labels, counts = binValues([]float64{2, 2, 2}, 5)
	if len(labels) != 1 || counts[0] != 3 {
		t.Errorf("Expected single bin of 3, got labels=%v counts=%v", labels, counts)
	}
}
