package cluster

// VirialMassKg estimates the cluster's dynamical mass in kilograms from
// the virial theorem, M = 3 sigma^2 R / G, with the velocity dispersion
// in km/s and the cluster radius (half the physical diameter) in Mpc.
func VirialMassKg(dispersionKms, radiusMpc float64) float64 {
	sigmaMs := dispersionKms * 1000.0
	radiusM := radiusMpc * MpcMeters
	return 3 * sigmaMs * sigmaMs * radiusM / GravConstSI
}

// VirialMassMsun is the same estimate evaluated directly in astronomer
// units, using G in Mpc Msun^-1 (km/s)^2. It agrees with
// VirialMassKg/SolarMassKg to within the precision of the constants.
func VirialMassMsun(dispersionKms, radiusMpc float64) float64 {
	return 3 * dispersionKms * dispersionKms * radiusMpc / GravConstAstro
}
