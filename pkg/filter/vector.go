package filter

import "github.com/tiyun2012/mocaptest/pkg/model"

// Vector3Filter smooths a 3D position with three independent OneEuro
// instances, one per axis. There is no cross-axis coupling. One instance is
// owned per joint and lives for the whole analysis session.
type Vector3Filter struct {
	x, y, z *OneEuro
}

func NewVector3Filter(minCutoff, beta, dCutoff float64) *Vector3Filter {
	return &Vector3Filter{
		x: NewOneEuro(minCutoff, beta, dCutoff),
		y: NewOneEuro(minCutoff, beta, dCutoff),
		z: NewOneEuro(minCutoff, beta, dCutoff),
	}
}

func (f *Vector3Filter) Filter(t float64, v model.Vector3) model.Vector3 {
	return model.Vector3{
		X: f.x.Filter(t, v.X),
		Y: f.y.Filter(t, v.Y),
		Z: f.z.Filter(t, v.Z),
	}
}

func (f *Vector3Filter) Reset() {
	f.x.Reset()
	f.y.Reset()
	f.z.Reset()
}
