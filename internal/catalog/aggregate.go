package catalog

// Object is one galaxy after duplicate observations are collapsed.
// Redshift is the arithmetic mean of all observations sharing the
// identifier. Position and separation are taken from the first
// observation: repeat pointings of the same object are assumed to agree
// on where it is, an approximation the reporting layer surfaces rather
// than hides.
type Object struct {
	ObjID   string
	RA      float64
	Dec     float64
	SpecZ   float64
	ProjSep float64
	NumObs  int // how many raw rows were merged into this object
}

// Aggregate collapses raw rows into one Object per unique identifier,
// preserving first-seen order. The returned slice has exactly one entry
// per distinct ObjID in rows.
func Aggregate(rows []Row) []Object {
	index := make(map[string]int, len(rows))
	objects := make([]Object, 0, len(rows))

	for _, r := range rows {
		i, seen := index[r.ObjID]
		if !seen {
			index[r.ObjID] = len(objects)
			objects = append(objects, Object{
				ObjID:   r.ObjID,
				RA:      r.RA,
				Dec:     r.Dec,
				SpecZ:   r.SpecZ, // accumulates as a sum until the final pass
				ProjSep: r.ProjSep,
				NumObs:  1,
			})
			continue
		}
		o := &objects[i]
		o.NumObs++
		o.SpecZ += r.SpecZ
	}

	for i := range objects {
		objects[i].SpecZ /= float64(objects[i].NumObs)
	}

	return objects
}
