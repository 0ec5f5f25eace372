package usecase

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tiyun2012/mocaptest/pkg/config"
	"github.com/tiyun2012/mocaptest/pkg/model"
)

var footJoints = [2]model.JointName{model.LFoot, model.RFoot}

// LockFeet suppresses foot slide: a foot that is near the floor and has
// barely moved since the previous frame snaps back to its exact previous
// position. The correction is deliberately not propagated up the leg; the
// short-lived leg-length violation is resolved by the constraint solver on
// the next frame, a one-frame-lag coupling between the two stages.
func LockFeet(joints model.JointPositions, prev *model.JointPositions, tuning config.Tuning) model.JointPositions {
	if prev == nil {
		return joints
	}
	out := joints
	for _, foot := range footJoints {
		if out[foot].Y >= tuning.FloorHeight {
			continue
		}
		if out[foot].Distance((*prev)[foot]) < tuning.FloorVelocity {
			out[foot] = (*prev)[foot]
		}
	}
	return out
}

// FixGround estimates the ground plane height as a low quantile of the
// per-frame minimum foot heights and returns a copy of the motion shifted
// so the floor sits at Y=0. Using a quantile instead of the global minimum
// keeps a single deep outlier frame from sinking the whole motion.
func FixGround(motion *model.MotionData, tuning config.Tuning) *model.MotionData {
	if tuning.GroundQuantile < 0 || len(motion.Frames) == 0 {
		return motion
	}

	footYs := make([]float64, 0, len(motion.Frames))
	for _, frame := range motion.Frames {
		footYs = append(footYs, math.Min(frame.Joints[model.LFoot].Y, frame.Joints[model.RFoot].Y))
	}
	sort.Float64s(footYs)
	groundY := stat.Quantile(tuning.GroundQuantile, stat.Empirical, footYs, nil)
	slog.Debug("Estimated ground height", "groundY", groundY)

	if groundY == 0 {
		return motion
	}

	fixed := &model.MotionData{
		Fps:    motion.Fps,
		Frames: make([]model.Frame, len(motion.Frames)),
	}
	offset := model.Vector3{Y: -groundY}
	for i, frame := range motion.Frames {
		out := frame
		for j := range out.Joints {
			out.Joints[j] = frame.Joints[j].Added(offset)
		}
		fixed.Frames[i] = out
	}
	return fixed
}
