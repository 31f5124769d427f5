package config

import "time"

// Database connection pool settings.
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
	DBConnectTimeout  = 10 * time.Second
)

// HTTP server timeouts.
const (
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 15 * time.Second
	ServerIdleTimeout     = 60 * time.Second
	ServerShutdownTimeout = 30 * time.Second
	RequestTimeout        = 30 * time.Second
)

// Cart rate limiting window.
const CartRateLimitWindow = time.Minute

// Stale cart sweep cadence.
const CleanupJobInterval = 1 * time.Hour
