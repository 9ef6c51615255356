package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVirialMassClosedForm(t *testing.T) {
	// sigma = 1000 km/s and a 2 Mpc diameter, cross-checked against the
	// virial formula evaluated from first principles.
	sigmaMs := 1000.0 * 1000.0             // m/s
	radiusM := 1.0 * 3.0856775814913673e22 // m
	want := 3 * sigmaMs * sigmaMs * radiusM / 6.67430e-11

	got := VirialMassKg(1000.0, 1.0)
	assert.InEpsilon(t, want, got, 1e-12)

	// Roughly 7e14 solar masses, the scale of a rich cluster.
	assert.InEpsilon(t, want/1.98847e30, got/SolarMassKg, 1e-12)
	assert.InDelta(t, 6.97e14, got/SolarMassKg, 0.02e15)
}

func TestVirialMassScaling(t *testing.T) {
	base := VirialMassKg(500, 1.0)

	// Doubling the dispersion quadruples the mass.
	assert.InEpsilon(t, 4*base, VirialMassKg(1000, 1.0), 1e-12)

	// Doubling the radius doubles the mass.
	assert.InEpsilon(t, 2*base, VirialMassKg(500, 2.0), 1e-12)
}

func TestVirialMassUnitSystemsAgree(t *testing.T) {
	// The astronomer-units constant carries fewer digits; agreement to
	// a part in a thousand is all the two unit systems promise.
	kg := VirialMassKg(750, 1.4)
	msun := VirialMassMsun(750, 1.4)
	assert.InEpsilon(t, kg/SolarMassKg, msun, 1e-3)
}
