package usecase

import (
	"log/slog"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"

	"github.com/tiyun2012/mocaptest/pkg/config"
	"github.com/tiyun2012/mocaptest/pkg/model"
)

// Session runs the per-frame correction chain for one video: resolve
// landmarks, smooth, enforce bone lengths, lock feet, append. It is strictly
// causal and sequential; each frame may read the previous frame's output but
// never looks ahead. Sessions share no state, so different videos can run
// concurrently.
type Session struct {
	id       string
	tuning   config.Tuning
	smoother *Smoother
	solver   *ConstraintSolver

	prev   *model.JointPositions // previous frame's corrected joints
	motion *model.MotionData
}

func NewSession(fps float64, tuning config.Tuning) *Session {
	return &Session{
		id:       uuid.NewString(),
		tuning:   tuning,
		smoother: NewSmoother(tuning),
		solver:   NewConstraintSolver(tuning),
		motion:   &model.MotionData{Fps: fps},
	}
}

// Step feeds one raw detector frame through the correction chain. Frames
// must arrive in time order. A frame with no usable landmarks repeats the
// previous output (hold-last-pose), or produces nothing before the first
// valid frame.
func (s *Session) Step(raw model.RawFrame) {
	joints, ok := model.JointPositions{}, false
	if raw.Detected() {
		joints, ok = resolveJoints(raw, s.prev, s.tuning.MinVisibility)
	}
	if !ok {
		if s.prev != nil {
			s.commit(raw.Time, *s.prev)
		}
		return
	}

	joints = s.smoother.Smooth(raw.Time, joints)

	if !s.solver.Calibrated() {
		// Calibration frame: establish reference lengths and pass the
		// filtered joints through uncorrected.
		s.solver.Calibrate(joints)
	} else {
		joints = s.solver.Solve(joints, s.prev)
		joints = LockFeet(joints, s.prev, s.tuning)
	}

	s.commit(raw.Time, joints)
}

func (s *Session) commit(t float64, joints model.JointPositions) {
	s.motion.Frames = append(s.motion.Frames, model.Frame{Time: t, Joints: joints})
	s.prev = &s.motion.Frames[len(s.motion.Frames)-1].Joints
}

// Result returns the corrected motion. An empty frame sequence means no
// frame ever produced valid data ("no motion captured").
func (s *Session) Result() *model.MotionData {
	return s.motion
}

// Stabilize runs one session per video concurrently and returns the
// corrected motions in input order.
func Stabilize(allRaws []*model.RawFrames, tuning config.Tuning, bar *pb.ProgressBar) []*model.MotionData {
	allMotions := make([]*model.MotionData, len(allRaws))

	var wg sync.WaitGroup
	for i, raws := range allRaws {
		wg.Add(1)

		go func(i int, raws *model.RawFrames) {
			defer wg.Done()

			session := NewSession(raws.Fps, tuning)
			slog.Info("Stabilize", "num", i+1, "total", len(allRaws), "session", session.id, "frames", len(raws.Frames))

			for _, raw := range raws.Frames {
				session.Step(raw)
				if bar != nil {
					bar.Increment()
				}
			}

			allMotions[i] = session.Result()
		}(i, raws)
	}

	wg.Wait()
	return allMotions
}
