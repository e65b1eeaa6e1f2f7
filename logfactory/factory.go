package logfactory

import (
	"io"
	"reflect"
	"sync"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned by setters that reject a value; the
// previously configured value stays in effect.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config defines options for New.
type Config struct {
	// MinLevel suppresses statements below this severity.
	// Default: LevelDebug (everything enabled)
	MinLevel Level
	// Colorize wraps each line in its level color while it is written.
	// Default: false
	Colorize bool
	// ShowTimestamps prefixes each line with "2006-01-02 15:04:05".
	// Default: false
	ShowTimestamps bool
	// Colors overrides the per-level palette; nil selects DefaultColors.
	Colors *Colors
	// Output is the console sink; nil selects color.Output, a stdout
	// writer with platform color support.
	Output io.Writer
}

// Factory provisions per-name loggers and owns their shared configuration:
// color palette, minimum level, timestamp display and the filter chain.
// Each factory keeps its own logger cache; nothing is shared process-wide,
// so independent factories never observe each other's settings.
type Factory struct {
	// guards colors, minLevel, showTimestamps and filters
	mu             sync.RWMutex
	colors         Colors
	minLevel       Level
	showTimestamps bool
	filters        []Filter

	colorize bool
	out      io.Writer

	// serializes the color scope and line write so concurrent loggers
	// cannot interleave escape sequences and text
	writeMu sync.Mutex

	cache sync.Map // map[string]*Logger
}

// New creates a factory with the given configuration. The colorize flag
// and output sink are fixed for the factory's lifetime; everything else
// can be changed through the setters.
func New(cfg Config) *Factory {
	colors := DefaultColors()
	if cfg.Colors != nil && cfg.Colors.valid() {
		colors = *cfg.Colors
	}
	out := cfg.Output
	if out == nil {
		out = color.Output
	}
	return &Factory{
		colors:         colors,
		minLevel:       cfg.MinLevel,
		showTimestamps: cfg.ShowTimestamps,
		colorize:       cfg.Colorize,
		out:            out,
	}
}

// GetLogger returns the cached logger for name, building one bound to the
// current palette and timestamp flag on first use. Under concurrent first
// use the first insert wins and every caller receives an interchangeable
// instance.
func (f *Factory) GetLogger(name string) *Logger {
	if v, ok := f.cache.Load(name); ok {
		return v.(*Logger)
	}
	l := f.newLogger(name)
	if actual, loaded := f.cache.LoadOrStore(name, l); loaded {
		return actual.(*Logger)
	}
	return l
}

// GetLoggerFor returns the logger keyed by v's full type name, so every
// value of the same type shares one logger. Pointers are keyed by their
// element type.
func (f *Factory) GetLoggerFor(v any) *Logger {
	return f.GetLogger(typeName(v))
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

func (f *Factory) newLogger(name string) *Logger {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return &Logger{
		name:           name,
		colors:         f.colors,
		showTimestamps: f.showTimestamps,
		factory:        f,
	}
}

// MinLevel returns the current severity gate.
func (f *Factory) MinLevel() Level {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.minLevel
}

// SetMinLevel changes the severity gate and clears the logger cache.
// Loggers re-read the gate from the factory on every write, so references
// handed out before the change honor the new threshold immediately.
func (f *Factory) SetMinLevel(level Level) {
	f.mu.Lock()
	f.minLevel = level
	f.mu.Unlock()
	f.cache.Clear()
}

// ShowTimestamps returns whether newly built loggers prefix lines with a
// timestamp.
func (f *Factory) ShowTimestamps() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.showTimestamps
}

// SetShowTimestamps changes the timestamp flag and clears the logger
// cache. Unlike the minimum level, the flag is baked into each logger at
// construction: loggers obtained before the change keep their old line
// format, loggers obtained afterwards use the new one.
func (f *Factory) SetShowTimestamps(show bool) {
	f.mu.Lock()
	f.showTimestamps = show
	f.mu.Unlock()
	f.cache.Clear()
}

// Colors returns the current palette.
func (f *Factory) Colors() Colors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.colors
}

// SetColors replaces the palette used by loggers built afterwards. A
// palette missing any level is rejected with ErrInvalidConfiguration and
// the prior palette stays in effect. The cache is not cleared: existing
// loggers keep the palette they were built with.
func (f *Factory) SetColors(c Colors) error {
	if !c.valid() {
		return errors.Wrap(ErrInvalidConfiguration, "palette must assign a color to every level")
	}
	f.mu.Lock()
	f.colors = c
	f.mu.Unlock()
	return nil
}

// AddFilter appends a predicate to the filter chain. The chain is
// consulted live on every write, so registration takes effect for loggers
// already handed out.
func (f *Factory) AddFilter(filter Filter) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	f.mu.Unlock()
}

// SetFilters replaces the filter chain. Passing nil clears it.
func (f *Factory) SetFilters(filters []Filter) {
	f.mu.Lock()
	f.filters = append([]Filter(nil), filters...)
	f.mu.Unlock()
}

// Filters returns a copy of the filter chain in registration order.
func (f *Factory) Filters() []Filter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Filter(nil), f.filters...)
}

// filterSnapshot returns the chain for one write without copying when it
// is empty.
func (f *Factory) filterSnapshot() []Filter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if len(f.filters) == 0 {
		return nil
	}
	return append([]Filter(nil), f.filters...)
}
