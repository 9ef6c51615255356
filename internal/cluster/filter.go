package cluster

import (
	"errors"
	"fmt"

	"github.com/banshee-data/virial.report/internal/catalog"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData indicates too few (or degenerate) redshifts to
// support the downstream statistics.
var ErrInsufficientData = errors.New("insufficient data")

// FilterResult holds the outcome of the 3-sigma membership cut.
type FilterResult struct {
	Members  []catalog.Object // objects inside the retention range
	Rejected []catalog.Object // objects outside it
	Mean     float64          // mean redshift of the aggregated set
	Stddev   float64          // population stddev of the aggregated set
	Low      float64          // inclusive lower bound, Mean - 3*Stddev
	High     float64          // inclusive upper bound, Mean + 3*Stddev
}

// FilterOutliers applies a single-pass 3-sigma cut on redshift. The mean
// and population standard deviation are computed once over the full
// aggregated set; this is deliberately not an iterative clipping loop.
// An empty input or a zero-width redshift distribution is an error: the
// dispersion and mass formulas downstream are undefined for it.
func FilterOutliers(objects []catalog.Object) (*FilterResult, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("%w: no objects to filter", ErrInsufficientData)
	}

	zs := make([]float64, len(objects))
	for i, o := range objects {
		zs[i] = o.SpecZ
	}

	mean := stat.Mean(zs, nil)
	sigma := stat.PopStdDev(zs, nil)
	if sigma == 0 {
		return nil, fmt.Errorf("%w: zero redshift spread across %d objects", ErrInsufficientData, len(objects))
	}

	res := &FilterResult{
		Mean:   mean,
		Stddev: sigma,
		Low:    mean - 3*sigma,
		High:   mean + 3*sigma,
	}
	for _, o := range objects {
		if o.SpecZ >= res.Low && o.SpecZ <= res.High {
			res.Members = append(res.Members, o)
		} else {
			res.Rejected = append(res.Rejected, o)
		}
	}

	if len(res.Members) < 2 {
		return nil, fmt.Errorf("%w: %d objects survive the 3-sigma cut", ErrInsufficientData, len(res.Members))
	}

	return res, nil
}
