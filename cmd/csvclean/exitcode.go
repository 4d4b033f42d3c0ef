package main

import (
	"github.com/JonMunkholm/csvclean/internal/config"
	"github.com/JonMunkholm/csvclean/internal/core"
)

// Process exit codes. Without strict exit every reported outcome exits 0.
const (
	exitOK             = 0
	exitGeneric        = 1
	exitUsage          = 2
	exitFileMissing    = 3
	exitNoHeader       = 4
	exitColumnNotFound = 5
)

func exitCode(cfg *config.Config, kind core.Kind) int {
	if !cfg.Cleaner.StrictExit {
		return exitOK
	}

	switch kind {
	case core.KindFileMissing:
		return exitFileMissing
	case core.KindNoHeader:
		return exitNoHeader
	case core.KindColumnNotFound:
		return exitColumnNotFound
	default:
		return exitGeneric
	}
}
