package logfactory

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger writes leveled lines for a single name. The palette and the
// timestamp flag are fixed at construction; the minimum level and the
// filter chain are read from the owning factory on every call. Loggers
// are obtained through Factory.GetLogger and are safe for concurrent use.
type Logger struct {
	name           string
	colors         Colors
	showTimestamps bool
	factory        *Factory
}

// Name returns the identifier the logger was provisioned for.
func (l *Logger) Name() string {
	return l.name
}

// Debug logs template at LevelDebug. Placeholders {0}, {1}, ... are
// replaced by the corresponding argument.
func (l *Logger) Debug(template string, args ...any) {
	l.log(LevelDebug, template, args, false)
}

// Info logs template at LevelInfo.
func (l *Logger) Info(template string, args ...any) {
	l.log(LevelInfo, template, args, false)
}

// Warn logs template at LevelWarn.
func (l *Logger) Warn(template string, args ...any) {
	l.log(LevelWarn, template, args, false)
}

// Error logs template at LevelError.
func (l *Logger) Error(template string, args ...any) {
	l.log(LevelError, template, args, false)
}

// ErrorErr logs template at LevelError and appends err's description on
// the following line. The composite text is emitted as-is: no placeholder
// substitution is applied to the error text.
func (l *Logger) ErrorErr(err error, template string, args ...any) {
	msg, rerr := interpolate(template, args)
	if rerr != nil {
		l.diagnose(template, args, rerr)
		return
	}
	description := "<nil>"
	if err != nil {
		description = err.Error()
	}
	l.log(LevelError, msg+"\n"+description, nil, true)
}

// Api logs an HTTP result with the level chosen from the status code:
// 5xx is an error, 4xx a warning, everything else informational.
func (l *Logger) Api(statusCode int, message string) {
	l.log(levelForStatus(statusCode), fmt.Sprintf("[%d] %s", statusCode, message), nil, true)
}

func levelForStatus(code int) Level {
	switch {
	case code >= 500:
		return LevelError
	case code >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// log runs the full pipeline: statement construction, level gate, filter
// chain, then the scoped render and write. rendered marks text that must
// not go through placeholder interpolation again. Nothing here ever
// propagates a failure to the caller.
func (l *Logger) log(level Level, template string, args []any, rendered bool) {
	if level < l.factory.MinLevel() {
		return
	}
	st := Statement{Level: level, Text: template, Args: args}
	if !allow(l.factory.filterSnapshot(), st) {
		return
	}
	if err := l.writeScoped(level, template, args, rendered); err != nil {
		l.diagnose(template, args, err)
	}
}

// writeScoped holds the factory write lock, enters the level color scope,
// renders the message and writes the assembled line. The scope and the
// lock are released on every path, including render failure; a render
// error is returned so the fallback can run outside the lock. Sink write
// errors are swallowed.
func (l *Logger) writeScoped(level Level, template string, args []any, rendered bool) error {
	f := l.factory
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if f.colorize {
		c := l.colors.forLevel(level)
		c.SetWriter(f.out)
		defer c.UnsetWriter(f.out)
	}

	msg := template
	if !rendered {
		var err error
		if msg, err = interpolate(template, args); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(f.out, l.line(level, msg))
	return nil
}

// line assembles the fixed output format around msg.
func (l *Logger) line(level Level, msg string) string {
	gid := goroutineID()
	if l.showTimestamps {
		return fmt.Sprintf("%s %s %s (%s): %s",
			time.Now().Format(timestampLayout), l.name, level, gid, msg)
	}
	return fmt.Sprintf("%s %s (%s): %s", l.name, level, gid, msg)
}

// diagnose reports a failed render as a WARN line carrying the raw
// template and arguments. The diagnostic goes through the full pipeline
// again, so it is subject to the same gate, filters and color scope.
func (l *Logger) diagnose(template string, args []any, err error) {
	text := fmt.Sprintf("could not render log template %q with arguments [%s]: %v",
		template, joinArgs(args), err)
	l.log(LevelWarn, text, nil, true)
}

// goroutineID extracts the numeric id of the calling goroutine from its
// stack header. Goroutines carry no names, so the id stands in for the
// thread name in the output line.
func goroutineID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	// header looks like "goroutine 12 [running]:"
	fields := strings.Fields(string(buf[:n]))
	if len(fields) >= 2 {
		return fields[1]
	}
	return "?"
}
