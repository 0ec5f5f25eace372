package usecase

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/tiyun2012/mocaptest/pkg/model"
)

// MotionSuffix is the file name suffix of exported motion documents.
const MotionSuffix = "_motion.json"

// WriteMotions exports each motion as JSON next to its input pose file,
// fanning out across videos. The first write error, if any, is returned
// after all writes have been attempted.
func WriteMotions(allRaws []*model.RawFrames, allMotions []*model.MotionData) error {
	errCh := make(chan error, len(allMotions))
	var wg sync.WaitGroup

	for i, raws := range allRaws {
		wg.Add(1)
		go func(i int, raws *model.RawFrames, motion *model.MotionData) {
			defer slog.Info("Output Motion", "num", i+1, "total", len(allMotions))
			defer wg.Done()

			path := strings.Replace(raws.Path, RawSuffix, MotionSuffix, 1)
			if err := writeMotion(path, motion); err != nil {
				slog.Error("Failed to write motion", "path", path, "error", err)
				errCh <- err
			}
		}(i, raws, allMotions[i])
	}

	wg.Wait()
	close(errCh)

	if len(errCh) > 0 {
		return <-errCh
	}

	return nil
}

func writeMotion(path string, motion *model.MotionData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	return encoder.Encode(motion)
}
