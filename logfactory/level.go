package logfactory

import (
	"fmt"
	"strings"
)

// Level is the severity of a log statement. Levels are totally ordered;
// a logger only emits statements at or above the factory minimum.
type Level int

const (
	// LevelDebug is the lowest severity.
	LevelDebug Level = iota
	// LevelInfo is for general progress messages.
	LevelInfo
	// LevelWarn is for conditions that deserve attention.
	LevelWarn
	// LevelError is the highest severity.
	LevelError
)

var levelLabels = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the fixed console label for the level. An out-of-range
// level is a programming error and panics.
func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		panic(fmt.Sprintf("logfactory: unknown level %d", int(l)))
	}
	return levelLabels[l]
}

// parseLevel maps a level name to its Level. Unknown names fall back to
// LevelInfo as a safe default.
func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
