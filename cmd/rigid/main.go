// SPDX-License-Identifier: MIT
// Command rigid inspects, averages and converts rigid-body transforms listed in
// a YAML pose document.
//
//	rigid -f poses.yaml show
//	rigid -f poses.yaml mean
//	rigid unpack 1 2 3 0 0 1.57
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/rigid/internal/log"
)

func main() {
	log.New(log.LevelInfo, os.Stderr)
	logger := log.Provide()
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger, os.Stdout).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
