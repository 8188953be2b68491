package show2d

import (
	"log/slog"
	"os"
)

// showLogLevel controls the level of the package logger.
// Default is LevelInfo, which suppresses Debug messages.
var showLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the display.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		showLogLevel.Set(slog.LevelDebug)
	} else {
		showLogLevel.Set(slog.LevelInfo)
	}
}

// showLogger is the default logger used when no WithLogger option is given.
var showLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: showLogLevel}))
