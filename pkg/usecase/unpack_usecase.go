package usecase

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/tiyun2012/mocaptest/pkg/model"
	"github.com/tiyun2012/mocaptest/pkg/utils"
)

// RawSuffix is the file name suffix of per-video detector output documents.
const RawSuffix = "_pose.json"

// Unpack reads every detector output document directly under dirPath into
// raw frame sequences, one per video.
func Unpack(dirPath string) ([]*model.RawFrames, error) {
	slog.Info("Start: Unpack =============================")

	jsonPaths, err := utils.GetPoseFilePaths(dirPath, RawSuffix)
	if err != nil {
		slog.Error("Failed to list pose files", "dir", dirPath, "error", err)
		return nil, err
	}

	allRaws := make([]*model.RawFrames, len(jsonPaths))

	bar := utils.NewProgressBar(len(jsonPaths))

	for i, path := range jsonPaths {
		bar.Increment()
		slog.Info("Unpack", "num", i+1, "total", len(jsonPaths), "path", path)

		file, err := os.Open(path)
		if err != nil {
			slog.Error("Failed to open pose file", "path", path, "error", err)
			return nil, err
		}

		raws := new(model.RawFrames)
		raws.Path = path
		decoder := json.NewDecoder(file)
		err = decoder.Decode(raws)
		file.Close()
		if err != nil {
			slog.Error("Failed to decode pose file", "path", path, "error", err)
			return nil, err
		}

		allRaws[i] = raws
	}

	bar.Finish()

	slog.Info("End: Unpack =============================")

	return allRaws, nil
}
