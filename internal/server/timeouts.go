package server

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	// writeTimeout covers a full admin refresh of every league.
	writeTimeout = 150 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second
