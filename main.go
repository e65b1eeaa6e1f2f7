package main

import (
	"strings"
	"time"

	"github.com/mordilloSan/go-logfactory/logfactory"
)

// Example demonstrating go-logfactory usage.
func main() {
	// Configuration can also come from LOGFACTORY_* environment variables
	// via logfactory.FromEnv().
	factory := logfactory.New(logfactory.Config{
		Colorize:       true,
		ShowTimestamps: true,
	})

	log := factory.GetLogger("demo.Startup")
	log.Debug("starting at {0}", time.Now().Format(time.RFC3339))
	log.Info("hello {0}", "world")
	log.Warn("be careful")
	log.Error("oops: {0}", "something happened")

	// Loggers can be keyed by type instead of by name.
	factory.GetLoggerFor(factory).Info("one logger per type")

	// Filters veto statements; this one drops anything mentioning secrets.
	factory.AddFilter(func(st logfactory.Statement) bool {
		return !strings.Contains(st.Text, "secret")
	})
	log.Info("the secret ingredient is love") // suppressed
	log.Info("this one still appears")

	// Raising the minimum level applies to loggers already handed out.
	factory.SetMinLevel(logfactory.LevelWarn)
	log.Info("not shown anymore")
	log.Warn("still shown")

	// A template that does not match its arguments degrades to a WARN
	// diagnostic instead of failing the caller.
	log.Error("missing {0} and {1}", "only-one")

	// API logging picks the level from the HTTP status code.
	api := factory.GetLogger("demo.API")
	api.Api(200, "request successful")
	api.Api(404, "resource not found")
	api.Api(500, "internal server error")
}
