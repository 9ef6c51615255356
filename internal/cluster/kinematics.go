package cluster

import (
	"github.com/banshee-data/virial.report/internal/catalog"
	"gonum.org/v1/gonum/stat"
)

// Member is a cluster member galaxy with its derived velocity columns.
// Velocities are in km/s.
type Member struct {
	catalog.Object

	// RecessionKms is the non-relativistic Hubble-flow velocity c*z.
	RecessionKms float64

	// PeculiarKms is the relativistic velocity offset from the cluster
	// systemic redshift.
	PeculiarKms float64
}

// Kinematics holds the velocity structure of the filtered member set.
type Kinematics struct {
	Members       []Member
	SystemicZ     float64 // mean redshift of the member set
	DispersionKms float64 // population stddev of peculiar velocities
}

// PeculiarVelocityKms computes the relativistic velocity of an object at
// redshift z relative to the cluster systemic redshift zSys, in km/s.
// It is exactly zero when z == zSys.
func PeculiarVelocityKms(z, zSys float64) float64 {
	a := (1 + z) * (1 + z)
	b := (1 + zSys) * (1 + zSys)
	return SpeedOfLightKms * (a - b) / (a + b)
}

// ComputeKinematics derives the velocity columns and the cluster
// velocity dispersion from the filtered member set. The caller
// guarantees members is non-empty (FilterOutliers enforces this).
func ComputeKinematics(objects []catalog.Object) Kinematics {
	zs := make([]float64, len(objects))
	for i, o := range objects {
		zs[i] = o.SpecZ
	}
	systemic := stat.Mean(zs, nil)

	members := make([]Member, len(objects))
	peculiar := make([]float64, len(objects))
	for i, o := range objects {
		v := PeculiarVelocityKms(o.SpecZ, systemic)
		members[i] = Member{
			Object:       o,
			RecessionKms: SpeedOfLightKms * o.SpecZ,
			PeculiarKms:  v,
		}
		peculiar[i] = v
	}

	return Kinematics{
		Members:       members,
		SystemicZ:     systemic,
		DispersionKms: stat.PopStdDev(peculiar, nil),
	}
}
