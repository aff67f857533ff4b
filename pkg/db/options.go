package db

import "time"

// Option -.
type Option func(*SQL)

// MaxPoolSize -.
func MaxPoolSize(size int) Option {
	return func(s *SQL) {
		s.maxPoolSize = size
	}
}

// ConnAttempts -.
func ConnAttempts(attempts int) Option {
	return func(s *SQL) {
		s.connAttempts = attempts
	}
}

// ConnTimeout -.
func ConnTimeout(timeout time.Duration) Option {
	return func(s *SQL) {
		s.connTimeout = timeout
	}
}

// EmbeddedPath sets the sqlite file used when no url is configured.
func EmbeddedPath(path string) Option {
	return func(s *SQL) {
		s.embeddedPath = path
	}
}

// EnableForeignKeys turns on sqlite foreign key enforcement.
func EnableForeignKeys(enable bool) Option {
	return func(s *SQL) {
		s.enableForeignKeys = enable
	}
}
