// Package cluster derives the systemic redshift, velocity dispersion,
// physical extent, and virial mass of a galaxy cluster from a
// deduplicated redshift catalog.
package cluster

import "math"

// Physical constants and the fixed cosmological parameter set (Planck
// 2018). The deceleration parameter follows from a flat universe with
// Om0 ≈ 0.311.
const (
	// SpeedOfLightKms is the speed of light in km/s.
	SpeedOfLightKms = 299792.458

	// HubbleConstant is H0 in km/s/Mpc.
	HubbleConstant = 67.66

	// DecelerationParameter is q0, dimensionless.
	DecelerationParameter = -0.534

	// GravConstSI is the Newtonian gravitational constant in
	// m^3 kg^-1 s^-2, used for the mass estimate in SI units.
	GravConstSI = 6.67430e-11

	// GravConstAstro is the same constant in Mpc Msun^-1 (km/s)^2,
	// convenient when working directly in catalog units.
	GravConstAstro = 4.30091e-9

	// SolarMassKg converts the final mass estimate to solar masses.
	SolarMassKg = 1.98847e30

	// MpcMeters is one megaparsec in meters.
	MpcMeters = 3.0856775814913673e22
)

// ArcminRadians is one arcminute in radians.
const ArcminRadians = math.Pi / 10800.0
