package logfactory

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps each level to the console color applied while its line is
// written. Every entry must be set; the factory rejects incomplete
// palettes.
type Colors struct {
	Debug *color.Color
	Info  *color.Color
	Warn  *color.Color
	Error *color.Color
}

// DefaultColors returns the standard palette: cyan for debug, green for
// info, yellow for warnings and red for errors.
func DefaultColors() Colors {
	return Colors{
		Debug: color.New(color.FgCyan),
		Info:  color.New(color.FgGreen),
		Warn:  color.New(color.FgYellow),
		Error: color.New(color.FgRed),
	}
}

// valid reports whether every level has a color assigned.
func (c Colors) valid() bool {
	return c.Debug != nil && c.Info != nil && c.Warn != nil && c.Error != nil
}

// forLevel returns the color configured for level.
func (c Colors) forLevel(level Level) *color.Color {
	switch level {
	case LevelDebug:
		return c.Debug
	case LevelInfo:
		return c.Info
	case LevelWarn:
		return c.Warn
	case LevelError:
		return c.Error
	default:
		panic(fmt.Sprintf("logfactory: unknown level %d", int(level)))
	}
}
