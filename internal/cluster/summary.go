package cluster

import (
	"errors"
	"fmt"
	"math"

	"github.com/banshee-data/virial.report/internal/catalog"
)

// ErrNonFinite indicates a derived quantity came out NaN or infinite,
// pointing at bad input data rather than a pipeline bug.
var ErrNonFinite = errors.New("non-finite result")

// Summary is the full output of one analysis run: stage counts, the
// membership cut, and every derived scalar.
type Summary struct {
	RawRows     int `json:"raw_rows"`
	Objects     int `json:"objects"`
	Members     int `json:"members"`
	Rejected    int `json:"rejected"`
	RepeatedIDs int `json:"repeated_ids"` // objects built from more than one observation

	// Membership cut over the aggregated redshift distribution.
	ZMean   float64 `json:"z_mean"`
	ZStddev float64 `json:"z_stddev"`
	ZLow    float64 `json:"z_low"`
	ZHigh   float64 `json:"z_high"`

	// Kinematics of the member set.
	SystemicZ     float64 `json:"systemic_z"`
	DispersionKms float64 `json:"dispersion_kms"`

	// Geometry, distances in Mpc.
	ComovingMpc    float64 `json:"comoving_mpc"`
	AngularDiamMpc float64 `json:"angular_diameter_mpc"`
	MaxSepArcmin   float64 `json:"max_separation_arcmin"`
	DiameterMpc    float64 `json:"diameter_mpc"`

	// Virial mass estimate.
	MassKg   float64 `json:"mass_kg"`
	MassMsun float64 `json:"mass_msun"`
}

// Result bundles the run summary with the member table carrying the
// derived velocity columns, for export and plotting.
type Result struct {
	Summary  Summary
	Members  []Member
	Rejected []catalog.Object
}

// Analyze runs the full pipeline over raw catalog rows: aggregate,
// filter, kinematics, geometry, mass. Aggregation always precedes the
// outlier cut, and the cut always precedes the dispersion and mass
// estimates; every downstream formula assumes the filtered,
// deduplicated set.
func Analyze(rows []catalog.Row) (*Result, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrInsufficientData)
	}

	objects := catalog.Aggregate(rows)

	repeated := 0
	for _, o := range objects {
		if o.NumObs > 1 {
			repeated++
		}
	}

	filtered, err := FilterOutliers(objects)
	if err != nil {
		return nil, err
	}

	kin := ComputeKinematics(filtered.Members)
	geo := ComputeGeometry(kin.Members, kin.SystemicZ)
	massKg := VirialMassKg(kin.DispersionKms, geo.DiameterMpc/2)

	res := &Result{
		Summary: Summary{
			RawRows:     len(rows),
			Objects:     len(objects),
			Members:     len(filtered.Members),
			Rejected:    len(filtered.Rejected),
			RepeatedIDs: repeated,

			ZMean:   filtered.Mean,
			ZStddev: filtered.Stddev,
			ZLow:    filtered.Low,
			ZHigh:   filtered.High,

			SystemicZ:     kin.SystemicZ,
			DispersionKms: kin.DispersionKms,

			ComovingMpc:    geo.ComovingMpc,
			AngularDiamMpc: geo.AngularDiamMpc,
			MaxSepArcmin:   geo.MaxSepArcmin,
			DiameterMpc:    geo.DiameterMpc,

			MassKg:   massKg,
			MassMsun: massKg / SolarMassKg,
		},
		Members:  kin.Members,
		Rejected: filtered.Rejected,
	}

	if err := res.Summary.CheckFinite(); err != nil {
		return nil, err
	}

	return res, nil
}

// CheckFinite rejects summaries containing NaN or infinite values so bad
// inputs fail loudly before anything is reported or persisted.
func (s *Summary) CheckFinite() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"z_mean", s.ZMean},
		{"z_stddev", s.ZStddev},
		{"systemic_z", s.SystemicZ},
		{"dispersion_kms", s.DispersionKms},
		{"comoving_mpc", s.ComovingMpc},
		{"angular_diameter_mpc", s.AngularDiamMpc},
		{"max_separation_arcmin", s.MaxSepArcmin},
		{"diameter_mpc", s.DiameterMpc},
		{"mass_kg", s.MassKg},
		{"mass_msun", s.MassMsun},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrNonFinite, c.name, c.v)
		}
	}
	return nil
}
