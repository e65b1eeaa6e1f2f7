package logfactory

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_GetLoggerSameName verifies that racing first requests for
// one name all resolve to interchangeable instances backed by a single
// cache entry.
func TestConcurrency_GetLoggerSameName(t *testing.T) {
	f := New(Config{})

	const numGoroutines = 100
	loggers := make([]*Logger, numGoroutines)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	done.Add(numGoroutines)
	for i := range numGoroutines {
		go func(i int) {
			defer done.Done()
			start.Wait()
			loggers[i] = f.GetLogger("pkg.Contested")
		}(i)
	}
	start.Done()
	done.Wait()

	for i, l := range loggers {
		require.Same(t, loggers[0], l, "goroutine %d received a different instance", i)
	}

	entries := 0
	f.cache.Range(func(any, any) bool {
		entries++
		return true
	})
	assert.Equal(t, 1, entries, "exactly one cache entry expected")
}

// TestConcurrency_LoggingManyGoroutines verifies that concurrent writes
// produce complete, non-interleaved lines.
func TestConcurrency_LoggingManyGoroutines(t *testing.T) {
	var buf bytes.Buffer
	f := New(Config{Output: &buf})

	const numGoroutines = 50
	const messagesPerGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			log := f.GetLogger("pkg.Worker")
			for j := range messagesPerGoroutine {
				log.Info("worker-{0} message-{1}", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine)
	for i, line := range lines {
		require.Contains(t, line, "pkg.Worker INFO (", "line %d appears garbled: %q", i, line)
		require.Contains(t, line, "worker-", "line %d appears garbled: %q", i, line)
	}
}

// TestConcurrency_ClearDuringGetOrCreate churns cache invalidation against
// get-or-create and checks the cache never ends up unusable.
func TestConcurrency_ClearDuringGetOrCreate(t *testing.T) {
	var buf bytes.Buffer
	f := New(Config{Output: &buf})

	const iterations = 500
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for range iterations {
			f.GetLogger("pkg.Churn").Error("still alive")
		}
	}()
	go func() {
		defer wg.Done()
		for i := range iterations {
			f.SetMinLevel(Level(i % int(LevelError+1)))
		}
	}()
	wg.Wait()

	f.SetMinLevel(LevelDebug)
	require.NotNil(t, f.GetLogger("pkg.Churn"))

	buf.Reset()
	f.GetLogger("pkg.Churn").Info("after the storm")
	assert.Contains(t, buf.String(), "after the storm")
}

// TestConcurrency_MixedConfigurationAndLogging exercises setters, filter
// registration and logging at the same time; the assertion is simply that
// every emitted line is well formed.
func TestConcurrency_MixedConfigurationAndLogging(t *testing.T) {
	var buf bytes.Buffer
	f := New(Config{Output: &buf})

	const numGoroutines = 20
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			log := f.GetLogger("pkg.Mixed")
			for j := range 50 {
				log.Warn("g{0} n{1}", id, j)
			}
		}(i)
		go func(id int) {
			defer wg.Done()
			for range 10 {
				f.SetShowTimestamps(id%2 == 0)
				f.AddFilter(func(Statement) bool { return true })
			}
		}(i)
	}
	wg.Wait()

	for i, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		require.Contains(t, line, "pkg.Mixed WARN (", "line %d appears garbled: %q", i, line)
	}
}
