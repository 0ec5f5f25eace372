package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/tiyun2012/mocaptest/pkg/config"
	"github.com/tiyun2012/mocaptest/pkg/usecase"
	"github.com/tiyun2012/mocaptest/pkg/utils"
)

var logLevel string
var dirPath string
var configPath string

func init() {
	flag.StringVar(&logLevel, "logLevel", "INFO", "set log level")
	flag.StringVar(&dirPath, "dirPath", "", "set directory path")
	flag.StringVar(&configPath, "configPath", "", "set tuning config path (optional)")
	flag.Parse()

	level := slog.LevelInfo
	if logLevel != "INFO" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if dirPath == "" {
		slog.Error("dirPath must be provided")
		os.Exit(1)
	}

	tuning, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load tuning config", "path", configPath, "error", err)
		os.Exit(1)
	}

	slog.Info("Unpack json ================")
	allRaws, err := usecase.Unpack(dirPath)
	if err != nil {
		slog.Error("Failed to unpack", "error", err)
		return
	}

	slog.Info("Stabilize Motion ================")
	totalFrames := 0
	for _, raws := range allRaws {
		totalFrames += len(raws.Frames)
	}
	bar := utils.NewProgressBar(totalFrames)
	allMotions := usecase.Stabilize(allRaws, tuning, bar)
	bar.Finish()

	slog.Info("Fix Ground Motion ================")
	for i, motion := range allMotions {
		allMotions[i] = usecase.FixGround(motion, tuning)
	}

	if tuning.ReduceTolerance > 0 {
		slog.Info("Reduce Motion ================")
		allMotions = usecase.Reduce(allMotions, tuning.ReduceTolerance)
	}

	slog.Info("Output Motion ================")
	if err := usecase.WriteMotions(allRaws, allMotions); err != nil {
		slog.Error("Failed to write motions", "error", err)
		return
	}

	slog.Info("Done!")
}
