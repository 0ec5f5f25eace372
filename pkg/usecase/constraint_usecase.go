package usecase

import (
	"log/slog"
	"math"

	"github.com/tiyun2012/mocaptest/pkg/config"
	"github.com/tiyun2012/mocaptest/pkg/model"
)

// ReferenceLengths holds the per-session expected length of every bone,
// indexed in model.Bones order. Established once from the first valid
// post-filter frame and immutable for the rest of the session.
type ReferenceLengths [model.BoneCount]float64

// ConstraintSolver enforces the calibrated bone lengths on each frame with
// a tiered policy: small deviations are accepted, medium ones are rescaled
// to the exact reference length, and large ones are treated as tracking
// failures and replaced by the previous frame's relative pose.
type ConstraintSolver struct {
	tuning     config.Tuning
	refs       ReferenceLengths
	calibrated bool
}

func NewConstraintSolver(tuning config.Tuning) *ConstraintSolver {
	return &ConstraintSolver{tuning: tuning}
}

// Calibrated reports whether reference lengths have been established.
func (s *ConstraintSolver) Calibrated() bool {
	return s.calibrated
}

// References returns a copy of the calibrated lengths.
func (s *ConstraintSolver) References() ReferenceLengths {
	return s.refs
}

// Calibrate establishes the reference lengths from the given joints.
// Subsequent calls are ignored: calibration is stationary per session even
// if the subject's apparent proportions drift later.
func (s *ConstraintSolver) Calibrate(joints model.JointPositions) {
	if s.calibrated {
		return
	}
	for i, bone := range model.Bones {
		s.refs[i] = joints[bone.Parent].Distance(joints[bone.Child])
	}
	s.calibrated = true
	slog.Debug("Calibrated bone reference lengths")
}

// Solve corrects the filtered joints against the reference lengths, walking
// the bone hierarchy parent-before-child so every child is corrected
// relative to its already-corrected parent. prev is the previous frame's
// corrected joints; without it the rigid carry-forward tier is skipped.
func (s *ConstraintSolver) Solve(joints model.JointPositions, prev *model.JointPositions) model.JointPositions {
	out := joints
	for i, bone := range model.Bones {
		edge := out[bone.Child].Subed(out[bone.Parent])
		length := edge.Length()

		refLen := s.refs[i]
		if refLen == 0 {
			refLen = 1
		}
		deviation := math.Abs(length-refLen) / refLen

		switch {
		case deviation > s.tuning.HardDeviation:
			// Tracking failure: carry the last trusted relative pose
			// forward rigidly from the corrected parent.
			if prev != nil {
				offset := (*prev)[bone.Child].Subed((*prev)[bone.Parent])
				out[bone.Child] = out[bone.Parent].Added(offset)
			}
		case deviation > s.tuning.SoftDeviation:
			// Keep the observed direction, force the exact reference length.
			out[bone.Child] = out[bone.Parent].Added(edge.Normalized().MuledScalar(s.refs[i]))
		default:
			// Sub-threshold variation is natural; correcting it would
			// manufacture jitter.
		}
	}
	return out
}
