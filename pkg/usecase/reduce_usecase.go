package usecase

import (
	"log/slog"
	"sync"

	"github.com/tiyun2012/mocaptest/pkg/model"
	"github.com/tiyun2012/mocaptest/pkg/utils"
)

// Reduce decimates each motion concurrently: frames that every joint can
// reconstruct by linear interpolation between the kept neighbours, within
// tolerance meters, are dropped. Zero or negative tolerance is a no-op.
// The first and last frames are always kept.
func Reduce(allMotions []*model.MotionData, tolerance float64) []*model.MotionData {
	if tolerance <= 0 {
		return allMotions
	}

	reduced := make([]*model.MotionData, len(allMotions))

	bar := utils.NewProgressBar(len(allMotions))
	var wg sync.WaitGroup

	for i := range allMotions {
		wg.Add(1)

		go func(i int, motion *model.MotionData) {
			defer wg.Done()
			defer bar.Increment()

			reduced[i] = reduceMotion(motion, tolerance)
			slog.Info("Reduce", "num", i+1, "total", len(allMotions),
				"before", len(motion.Frames), "after", len(reduced[i].Frames))
		}(i, allMotions[i])
	}

	wg.Wait()
	bar.Finish()

	return reduced
}

func reduceMotion(motion *model.MotionData, tolerance float64) *model.MotionData {
	out := &model.MotionData{Fps: motion.Fps}
	if len(motion.Frames) <= 2 {
		out.Frames = append(out.Frames, motion.Frames...)
		return out
	}

	anchor := 0
	out.Frames = append(out.Frames, motion.Frames[anchor])

	for end := 2; end < len(motion.Frames); end++ {
		if !segmentWithinTolerance(motion.Frames, anchor, end, tolerance) {
			anchor = end - 1
			out.Frames = append(out.Frames, motion.Frames[anchor])
		}
	}

	out.Frames = append(out.Frames, motion.Frames[len(motion.Frames)-1])
	return out
}

// segmentWithinTolerance checks that every frame strictly between anchor and
// end is reconstructible by lerping the two endpoints.
func segmentWithinTolerance(frames []model.Frame, anchor, end int, tolerance float64) bool {
	a, b := frames[anchor], frames[end]
	span := b.Time - a.Time
	if span <= 0 {
		return false
	}
	for i := anchor + 1; i < end; i++ {
		f := frames[i]
		ratio := (f.Time - a.Time) / span
		for j := range f.Joints {
			lerped := a.Joints[j].Added(b.Joints[j].Subed(a.Joints[j]).MuledScalar(ratio))
			if lerped.Distance(f.Joints[j]) > tolerance {
				return false
			}
		}
	}
	return true
}
