// Package db persists analysis runs to sqlite so repeated analyses of
// the same field can be compared later.
package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/virial.report/internal/cluster"
)

type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the run database at path and brings
// its schema up to date.
func Open(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run database: %w", err)
	}

	db := &DB{sqldb}
	if err := db.MigrateUp(); err != nil {
		sqldb.Close()
		return nil, err
	}
	return db, nil
}

// RunRecord is one stored analysis run.
type RunRecord struct {
	RunID     string
	CreatedAt string // as stored by sqlite, UTC
	Source    string
	Summary   cluster.Summary
}

// SaveRun stores the summary and member table of one run and returns
// the generated run ID.
func (db *DB) SaveRun(source string, res *cluster.Result) (string, error) {
	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin save run: %w", err)
	}
	defer tx.Rollback()

	s := res.Summary
	_, err = tx.Exec(`
		INSERT INTO runs (
			run_id, source, raw_rows, objects, members, rejected, repeated_ids,
			z_mean, z_stddev, z_low, z_high,
			systemic_z, dispersion_kms,
			comoving_mpc, angular_diameter_mpc, max_separation_arcmin, diameter_mpc,
			mass_kg, mass_msun
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, source, s.RawRows, s.Objects, s.Members, s.Rejected, s.RepeatedIDs,
		s.ZMean, s.ZStddev, s.ZLow, s.ZHigh,
		s.SystemicZ, s.DispersionKms,
		s.ComovingMpc, s.AngularDiamMpc, s.MaxSepArcmin, s.DiameterMpc,
		s.MassKg, s.MassMsun,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO members (
			run_id, objid, ra, dec, specz, proj_sep, num_obs, v_rec_kms, v_pec_kms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare member insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range res.Members {
		if _, err := stmt.Exec(runID, m.ObjID, m.RA, m.Dec, m.SpecZ, m.ProjSep, m.NumObs, m.RecessionKms, m.PeculiarKms); err != nil {
			return "", fmt.Errorf("insert member %s: %w", m.ObjID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns stored runs, newest first.
func (db *DB) ListRuns() ([]RunRecord, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, source, raw_rows, objects, members, rejected, repeated_ids,
		       z_mean, z_stddev, z_low, z_high,
		       systemic_z, dispersion_kms,
		       comoving_mpc, angular_diameter_mpc, max_separation_arcmin, diameter_mpc,
		       mass_kg, mass_msun
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		s := &rec.Summary
		err := rows.Scan(
			&rec.RunID, &rec.CreatedAt, &rec.Source, &s.RawRows, &s.Objects, &s.Members, &s.Rejected, &s.RepeatedIDs,
			&s.ZMean, &s.ZStddev, &s.ZLow, &s.ZHigh,
			&s.SystemicZ, &s.DispersionKms,
			&s.ComovingMpc, &s.AngularDiamMpc, &s.MaxSepArcmin, &s.DiameterMpc,
			&s.MassKg, &s.MassMsun,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountMembers returns the number of stored members for a run.
func (db *DB) CountMembers(runID string) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM members WHERE run_id = ?", runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}
