package cluster

import "math"

// Geometry holds the distance and size estimates for the cluster. All
// distances are in Mpc.
type Geometry struct {
	ComovingMpc    float64 // line-of-sight comoving distance
	AngularDiamMpc float64 // angular-diameter distance
	MaxSepArcmin   float64 // largest projected member separation
	DiameterMpc    float64 // physical diameter from the max separation
}

// ComovingDistanceMpc approximates the comoving distance to redshift z
// with the low-redshift Taylor expansion
//
//	r = (c z / H0) * (1 - (z/2)(1 + q0))
//
// which is adequate for the z ~ 0.05 clusters this tool targets.
func ComovingDistanceMpc(z float64) float64 {
	return (SpeedOfLightKms * z / HubbleConstant) * (1 - (z/2)*(1+DecelerationParameter))
}

// AngularDiameterDistanceMpc converts a comoving distance at redshift z
// to an angular-diameter distance.
func AngularDiameterDistanceMpc(comovingMpc, z float64) float64 {
	return comovingMpc / (1 + z)
}

// ComputeGeometry derives the cluster's distances and physical diameter.
// The extent estimate takes the single most distant member as the edge
// of the cluster: diameter = 2 * D_A * theta_max. No percentile or other
// robust radius is attempted.
func ComputeGeometry(members []Member, systemicZ float64) Geometry {
	var maxSep float64
	for _, m := range members {
		if math.IsNaN(m.ProjSep) {
			// A comparison against NaN is always false, which would
			// silently drop the member from the max; propagate it so
			// the finite check fails instead.
			maxSep = math.NaN()
			break
		}
		if m.ProjSep > maxSep {
			maxSep = m.ProjSep
		}
	}

	comoving := ComovingDistanceMpc(systemicZ)
	angular := AngularDiameterDistanceMpc(comoving, systemicZ)

	return Geometry{
		ComovingMpc:    comoving,
		AngularDiamMpc: angular,
		MaxSepArcmin:   maxSep,
		DiameterMpc:    2 * angular * maxSep * ArcminRadians,
	}
}
