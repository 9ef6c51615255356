// Package report renders analysis results: a console summary, CSV and
// JSON exports, PNG plots, and an HTML chart page.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/virial.report/internal/cluster"
)

// WriteSummary prints the human-readable run summary.
func WriteSummary(w io.Writer, res *cluster.Result) {
	s := res.Summary

	fmt.Fprintf(w, "Catalog:\n")
	fmt.Fprintf(w, "  raw rows:            %d\n", s.RawRows)
	fmt.Fprintf(w, "  unique objects:      %d (%d with repeat observations)\n", s.Objects, s.RepeatedIDs)
	fmt.Fprintf(w, "Membership (3-sigma cut on redshift):\n")
	fmt.Fprintf(w, "  mean / stddev:       %.6f / %.6f\n", s.ZMean, s.ZStddev)
	fmt.Fprintf(w, "  retention range:     [%.6f, %.6f]\n", s.ZLow, s.ZHigh)
	fmt.Fprintf(w, "  members / rejected:  %d / %d\n", s.Members, s.Rejected)
	for _, o := range res.Rejected {
		fmt.Fprintf(w, "    rejected %s at z=%.4f\n", o.ObjID, o.SpecZ)
	}
	fmt.Fprintf(w, "Kinematics:\n")
	fmt.Fprintf(w, "  systemic redshift:   %.6f\n", s.SystemicZ)
	fmt.Fprintf(w, "  velocity dispersion: %.1f km/s\n", s.DispersionKms)
	fmt.Fprintf(w, "Geometry:\n")
	fmt.Fprintf(w, "  comoving distance:   %.1f Mpc\n", s.ComovingMpc)
	fmt.Fprintf(w, "  angular diam dist:   %.1f Mpc\n", s.AngularDiamMpc)
	fmt.Fprintf(w, "  max separation:      %.2f arcmin\n", s.MaxSepArcmin)
	fmt.Fprintf(w, "  physical diameter:   %.2f Mpc\n", s.DiameterMpc)
	fmt.Fprintf(w, "Virial mass:\n")
	fmt.Fprintf(w, "  %.3e kg (%.3e Msun)\n", s.MassKg, s.MassMsun)
}

// WriteMembersCSV writes the member table with its derived velocity
// columns.
func WriteMembersCSV(w io.Writer, members []cluster.Member) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"objid", "ra", "dec", "specz", "proj_sep", "num_obs", "v_rec_kms", "v_pec_kms"}); err != nil {
		return fmt.Errorf("write members header: %w", err)
	}
	for _, m := range members {
		row := []string{
			m.ObjID,
			fmt.Sprintf("%.6f", m.RA),
			fmt.Sprintf("%.6f", m.Dec),
			fmt.Sprintf("%.6f", m.SpecZ),
			fmt.Sprintf("%.4f", m.ProjSep),
			fmt.Sprintf("%d", m.NumObs),
			fmt.Sprintf("%.2f", m.RecessionKms),
			fmt.Sprintf("%.2f", m.PeculiarKms),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write member row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportMembersCSV writes the member table to path.
func ExportMembersCSV(path string, members []cluster.Member) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create members CSV: %w", err)
	}
	defer f.Close()
	return WriteMembersCSV(f, members)
}

// ExportSummaryJSON writes the summary struct as indented JSON.
func ExportSummaryJSON(path string, s cluster.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write summary JSON: %w", err)
	}
	return nil
}
