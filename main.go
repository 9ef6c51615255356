// virial-report estimates the systemic redshift, velocity dispersion,
// physical size, and virial mass of a galaxy cluster from a CSV catalog
// of spectroscopic redshift measurements.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/banshee-data/virial.report/internal/catalog"
	"github.com/banshee-data/virial.report/internal/cluster"
	"github.com/banshee-data/virial.report/internal/db"
	"github.com/banshee-data/virial.report/internal/report"
	"github.com/banshee-data/virial.report/internal/version"
)

// Config holds the command-line configuration for one analysis run.
type Config struct {
	CatalogFile string
	OutputDir   string
	DBPath      string
	ExportCSV   bool
	ExportJSON  bool
	ExportPlots bool
	ExportHTML  bool
	ListRuns    bool
	Verbose     bool
	Version     bool
}

func main() {
	config := parseFlags()

	if config.Version {
		fmt.Println(version.String())
		return
	}

	if config.ListRuns {
		if config.DBPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -list-runs requires -db")
			os.Exit(1)
		}
		if err := listRuns(config.DBPath); err != nil {
			log.Fatalf("List runs failed: %v", err)
		}
		return
	}

	if config.CatalogFile == "" {
		fmt.Fprintln(os.Stderr, "Error: catalog file is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(config); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}

func run(config Config) error {
	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	rows, err := catalog.Load(config.CatalogFile)
	if err != nil {
		return err
	}
	if config.Verbose {
		log.Printf("Loaded %d rows from %s", len(rows), config.CatalogFile)
	}

	res, err := cluster.Analyze(rows)
	if err != nil {
		return err
	}
	if config.Verbose {
		log.Printf("Aggregated to %d objects, %d members after 3-sigma cut",
			res.Summary.Objects, res.Summary.Members)
	}

	report.WriteSummary(os.Stdout, res)

	if config.ExportCSV {
		path := filepath.Join(config.OutputDir, "members.csv")
		if err := report.ExportMembersCSV(path, res.Members); err != nil {
			return err
		}
		log.Printf("Wrote member table to %s", path)
	}

	if config.ExportJSON {
		path := filepath.Join(config.OutputDir, "summary.json")
		if err := report.ExportSummaryJSON(path, res.Summary); err != nil {
			return err
		}
		log.Printf("Wrote summary to %s", path)
	}

	if config.ExportPlots {
		n, err := report.GeneratePlots(config.OutputDir, res.Members)
		if err != nil {
			return err
		}
		log.Printf("Wrote %d plots to %s", n, config.OutputDir)
	}

	if config.ExportHTML {
		path := filepath.Join(config.OutputDir, "report.html")
		if err := report.ExportHTMLReport(path, res); err != nil {
			return err
		}
		log.Printf("Wrote HTML report to %s", path)
	}

	if config.DBPath != "" {
		database, err := db.Open(config.DBPath)
		if err != nil {
			return err
		}
		defer database.Close()

		runID, err := database.SaveRun(config.CatalogFile, res)
		if err != nil {
			return err
		}
		log.Printf("Saved run %s to %s", runID, config.DBPath)
	}

	return nil
}

func listRuns(dbPath string) error {
	database, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No stored runs.")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %s  members=%d  z=%.4f  sigma=%.0f km/s  M=%.2e Msun\n",
			r.RunID, r.CreatedAt, r.Source,
			r.Summary.Members, r.Summary.SystemicZ, r.Summary.DispersionKms, r.Summary.MassMsun)
	}
	return nil
}

func parseFlags() Config {
	config := Config{}

	flag.StringVar(&config.CatalogFile, "catalog", "", "Path to CSV catalog (required)")
	flag.StringVar(&config.OutputDir, "output", ".", "Output directory for exports")
	flag.StringVar(&config.DBPath, "db", "", "SQLite database path for run persistence (optional)")
	flag.BoolVar(&config.ExportCSV, "csv", true, "Export member table to CSV")
	flag.BoolVar(&config.ExportJSON, "json", true, "Export summary to JSON")
	flag.BoolVar(&config.ExportPlots, "plots", false, "Render PNG histograms and boxplot")
	flag.BoolVar(&config.ExportHTML, "html", false, "Render HTML chart report")
	flag.BoolVar(&config.ListRuns, "list-runs", false, "List stored runs from -db and exit")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose output")
	flag.BoolVar(&config.Version, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Galaxy Cluster Virial Mass Estimator\n\n")
		fmt.Fprintf(os.Stderr, "This tool runs a catalog of redshift measurements through the full pipeline:\n")
		fmt.Fprintf(os.Stderr, "  1. Load the CSV catalog (objid, ra, dec, specz, proj_sep)\n")
		fmt.Fprintf(os.Stderr, "  2. Collapse repeat observations per object (mean redshift)\n")
		fmt.Fprintf(os.Stderr, "  3. Drop 3-sigma redshift outliers\n")
		fmt.Fprintf(os.Stderr, "  4. Derive recession and peculiar velocities and the dispersion\n")
		fmt.Fprintf(os.Stderr, "  5. Derive comoving distance, angular-diameter distance, and size\n")
		fmt.Fprintf(os.Stderr, "  6. Estimate the dynamical mass via the virial theorem\n")
		fmt.Fprintf(os.Stderr, "  7. Report (console, CSV, JSON, plots, HTML, sqlite)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -catalog field.csv -output ./results -plots -html\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -catalog field.csv -db runs.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db runs.db -list-runs\n", os.Args[0])
	}

	flag.Parse()
	return config
}
