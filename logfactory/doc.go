// Package logfactory provides per-name console loggers produced by a
// shared factory, with a fixed write pipeline: level gate, filter chain,
// message rendering, colorized line output.
//
// # Features
//
//   - Lazy, concurrency-safe logger cache keyed by name or type
//   - Minimum-level gate re-read live from the factory on every write
//   - Pluggable filter predicates that can veto individual statements
//   - Optional ANSI colors per level, scoped around each line
//   - Optional timestamps, baked into loggers at construction
//   - Indexed {0}-style placeholders with a diagnostic fallback when a
//     template and its arguments do not match
//   - Best-effort output: nothing in the logging path fails the caller
//
// # Usage
//
// Create one factory and hand out loggers by name or by type:
//
//	factory := logfactory.New(logfactory.Config{Colorize: true})
//	log := factory.GetLogger("billing.Invoicer")
//	log.Info("invoice {0} sent to {1}", id, customer)
//
//	factory.GetLoggerFor(&Invoicer{}).Warn("retrying {0}", id)
//
// Raise the threshold at runtime; loggers already handed out comply:
//
//	factory.SetMinLevel(logfactory.LevelWarn)
//
// Veto statements with filters:
//
//	factory.AddFilter(func(st logfactory.Statement) bool {
//	    return !strings.Contains(st.Text, "password")
//	})
//
// # Environment
//
// FromEnv reads LOGFACTORY_LEVEL, LOGFACTORY_COLORIZE and
// LOGFACTORY_TIMESTAMPS:
//
//	cfg, err := logfactory.FromEnv()
//	factory := logfactory.New(cfg)
package logfactory
