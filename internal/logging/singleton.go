package logging

import (
	"sync"
)

var (
	instance  *Logger
	once      sync.Once
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration.
// This should be called before any logger usage.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// GetLogger returns the singleton logger instance.
// Without a prior Configure call, or if the configured file cannot be opened,
// it falls back to an info-level stdout logger.
func GetLogger() *Logger {
	once.Do(func() {
		mu.RLock()
		cfg := logConfig
		mu.RUnlock()

		if cfg != nil {
			if l, err := NewLogger(cfg); err == nil {
				instance = l
				return
			}
		}
		instance, _ = NewLogger(&Config{Level: LevelInfo})
	})

	return instance
}
