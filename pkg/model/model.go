package model

import "math"

// Vector3 is a point or offset in meters, Y-up, floor at Y=0.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector3) Added(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Subed(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3) MuledScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Distance(other Vector3) float64 {
	return v.Subed(other).Length()
}

// Normalized returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MuledScalar(1 / l)
}

// RawJoint is a single landmark estimate as produced by the pose detector.
// Visibility is a confidence in [0,1]; detectors that do not report it
// should leave it at 1.
type RawJoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

func (j RawJoint) Position() Vector3 {
	return Vector3{j.X, j.Y, j.Z}
}

// RawFrame is one timestamped detector output. A nil or empty Landmarks map
// means no person was detected at this timestamp.
type RawFrame struct {
	Time      float64             `json:"time"`
	Landmarks map[string]RawJoint `json:"landmarks"`
}

func (f RawFrame) Detected() bool {
	return len(f.Landmarks) > 0
}

// RawFrames is the per-video detector output document.
type RawFrames struct {
	Path   string     `json:"-"`
	Fps    float64    `json:"fps"`
	Frames []RawFrame `json:"frames"`
}

// Frame is one corrected output frame.
type Frame struct {
	Time   float64        `json:"time"`
	Joints JointPositions `json:"joints"`
}

// MotionData is the output artifact of one analysis session: the nominal
// sampling rate and the ordered corrected frames. Its JSON form is the
// export contract and round-trips losslessly.
type MotionData struct {
	Fps    float64 `json:"fps"`
	Frames []Frame `json:"frames"`
}
