package usecase

import (
	"github.com/tiyun2012/mocaptest/pkg/config"
	"github.com/tiyun2012/mocaptest/pkg/filter"
	"github.com/tiyun2012/mocaptest/pkg/model"
)

// landmarkAlternates maps each joint to the detector landmark names that can
// stand in for it, in priority order. Extremities are the least reliable
// detections, so they get neighbouring landmarks as fallbacks.
var landmarkAlternates = func() [model.JointCount][]string {
	var m [model.JointCount][]string
	for j := model.JointName(0); j < model.JointCount; j++ {
		m[j] = []string{j.String()}
	}
	m[model.LHand] = []string{"l_hand", "l_wrist"}
	m[model.RHand] = []string{"r_hand", "r_wrist"}
	m[model.LFingers] = []string{"l_fingers", "l_index", "l_pinky", "l_hand"}
	m[model.RFingers] = []string{"r_fingers", "r_index", "r_pinky", "r_hand"}
	m[model.LToe] = []string{"l_toe", "l_big_toe", "l_heel"}
	m[model.RToe] = []string{"r_toe", "r_big_toe", "r_heel"}
	return m
}()

// resolveJoints builds a fully populated joint set from one raw detection.
// Per joint: the first alternate landmark at or above the visibility floor
// wins; below that, the previous frame's value; with no history, the best
// low-confidence candidate. Returns false when a joint cannot be resolved
// at all, in which case the frame is treated as undetected.
func resolveJoints(raw model.RawFrame, prev *model.JointPositions, minVisibility float64) (model.JointPositions, bool) {
	var joints model.JointPositions
	for j := model.JointName(0); j < model.JointCount; j++ {
		resolved := false
		for _, name := range landmarkAlternates[j] {
			lm, ok := raw.Landmarks[name]
			if ok && lm.Visibility >= minVisibility {
				joints[j] = lm.Position()
				resolved = true
				break
			}
		}
		if resolved {
			continue
		}
		if prev != nil {
			joints[j] = (*prev)[j]
			continue
		}
		// No history yet: take the most visible candidate regardless of the
		// floor, so a calibration frame is still possible.
		best := -1.0
		for _, name := range landmarkAlternates[j] {
			if lm, ok := raw.Landmarks[name]; ok && lm.Visibility > best {
				joints[j] = lm.Position()
				best = lm.Visibility
			}
		}
		if best < 0 {
			return joints, false
		}
	}
	return joints, true
}

// Smoother owns one Vector3Filter per joint for the lifetime of a session.
type Smoother struct {
	filters [model.JointCount]*filter.Vector3Filter
}

func NewSmoother(tuning config.Tuning) *Smoother {
	s := &Smoother{}
	for j := range s.filters {
		s.filters[j] = filter.NewVector3Filter(tuning.MinCutoff, tuning.Beta, tuning.DCutoff)
	}
	return s
}

// Smooth filters every joint independently at time t.
func (s *Smoother) Smooth(t float64, joints model.JointPositions) model.JointPositions {
	var out model.JointPositions
	for j := range joints {
		out[j] = s.filters[j].Filter(t, joints[j])
	}
	return out
}
