package atomforge

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
===============================================================================
    Tooling Logger
===============================================================================
*/

// The codec itself narrates through zerolog (see decoder.go); this
// constructor builds the human-facing logger used by the command line
// tools around it.

// NewToolLogger creates the `zap.SugaredLogger` behind the atomforge
// commands. The default output is colourised console lines; jsonOut
// switches to one JSON object per line so compile runs can be scraped
// by build tooling. Additional writers are teed together.
func NewToolLogger(jsonOut bool, writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	var writer zapcore.WriteSyncer
	switch len(writers) {
	case 0:
		writer = zapcore.Lock(os.Stderr)
	case 1:
		writer = writers[0]
	default:
		writer = zapcore.NewMultiWriteSyncer(writers...)
	}

	cfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	var enc zapcore.Encoder
	if jsonOut {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zap.New(zapcore.NewCore(enc, writer, zapcore.DebugLevel)).Sugar()
}
