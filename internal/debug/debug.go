// Package debug provides optional file-based debug logging.
//
// When the TOUR_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

// Log appends a formatted message to the debug file, if enabled.
// Safe to call from any goroutine.
func Log(format string, args ...any) {
	once.Do(open)
	if file == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s "+format+"\n",
		append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}

// Enabled returns true if debug logging is active.
func Enabled() bool {
	once.Do(open)
	return file != nil
}

func open() {
	path := os.Getenv("TOUR_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	file = f
}
