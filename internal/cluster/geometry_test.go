package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/virial.report/internal/catalog"
)

func objWithSep(id string, sep float64) catalog.Object {
	return catalog.Object{ObjID: id, SpecZ: 0.05, ProjSep: sep, NumObs: 1}
}

func TestComovingDistanceMatchesExpansion(t *testing.T) {
	// Independent evaluation of r = (cz/H0)(1 - (z/2)(1+q0)).
	z := 0.05
	want := (299792.458 * z / 67.66) * (1 - (z/2)*(1-0.534))
	assert.InDelta(t, want, ComovingDistanceMpc(z), 1e-9)
}

func TestAngularDiameterDistance(t *testing.T) {
	r := ComovingDistanceMpc(0.05)
	assert.InDelta(t, r/1.05, AngularDiameterDistanceMpc(r, 0.05), 1e-9)
}

func TestComputeGeometryUsesMaxSeparation(t *testing.T) {
	members := []Member{
		{Object: objWithSep("a", 1.0)},
		{Object: objWithSep("b", 4.5)},
		{Object: objWithSep("c", 2.2)},
	}

	geo := ComputeGeometry(members, 0.05)
	require.Equal(t, 4.5, geo.MaxSepArcmin)

	// Diameter is 2 * D_A * theta_max with theta in radians.
	want := 2 * geo.AngularDiamMpc * 4.5 * ArcminRadians
	assert.InDelta(t, want, geo.DiameterMpc, 1e-12)
}

func TestComputeGeometryPropagatesNaNSeparation(t *testing.T) {
	// A NaN separation must not be skipped by the max-scan: it would
	// silently shrink the diameter. It propagates so the finite check
	// can reject the run.
	members := []Member{
		{Object: objWithSep("a", 2.0)},
		{Object: objWithSep("b", math.NaN())},
		{Object: objWithSep("c", 5.0)},
	}

	geo := ComputeGeometry(members, 0.05)
	assert.True(t, math.IsNaN(geo.MaxSepArcmin))
	assert.True(t, math.IsNaN(geo.DiameterMpc))
}

func TestGeometryDiameterScalesWithSeparation(t *testing.T) {
	one := ComputeGeometry([]Member{{Object: objWithSep("a", 3.0)}}, 0.05)
	two := ComputeGeometry([]Member{{Object: objWithSep("a", 6.0)}}, 0.05)
	assert.InDelta(t, 2*one.DiameterMpc, two.DiameterMpc, 1e-12)
}
