// Package logutil builds the debug logger. The TUI owns the terminal, so
// debug output goes to a file; without --debug everything is a no-op.
package logutil

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a no-op logger unless debug is set, in which case it appends
// console-encoded debug output to path. The returned close func flushes the
// file and is safe to call on the no-op logger too.
func New(path string, debug bool) (*zap.SugaredLogger, func(), error) {
	if !debug {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	if path == "" {
		path = filepath.Join(os.TempDir(), "typewright.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %s", err)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(f),
		zap.DebugLevel,
	)
	logger := zap.New(core)
	closer := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger.Sugar(), closer, nil
}
