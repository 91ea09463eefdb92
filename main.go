package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rfielding/fsmdot/fsm"
	"github.com/rfielding/fsmdot/internal/config"
	"github.com/rfielding/fsmdot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Initialize(cfg.LogLevel, logger.ParseFormat(cfg.LogFormat))

	a := newApp(cfg, logger.For(cfg.ProgramName), time.Now)
	if err := newRootCmd(a).Execute(); err != nil {
		// Validation problems have already been listed on stdout.
		var verr *fsm.ValidationError
		if !errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		_ = zap.L().Sync()
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
