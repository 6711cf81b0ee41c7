package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup reads key and runs parse over the trimmed value. Unset, blank or
// unparsable values yield fallback.
func lookup[T any](key string, fallback T, parse func(string) (T, bool)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if v, ok := parse(raw); ok {
		return v
	}
	return fallback
}

func envOrDefault(key, fallback string) string {
	return lookup(key, fallback, func(s string) (string, bool) { return s, true })
}

// durationEnvOrDefault accepts Go durations ("90s", "1h") or a bare number of seconds.
func durationEnvOrDefault(key string, fallback time.Duration) time.Duration {
	return lookup(key, fallback, func(s string) (time.Duration, bool) {
		if secs, err := strconv.Atoi(s); err == nil {
			return time.Duration(secs) * time.Second, secs > 0
		}
		d, err := time.ParseDuration(s)
		return d, err == nil && d > 0
	})
}

func boolEnvOrDefault(key string, fallback bool) bool {
	return lookup(key, fallback, func(s string) (bool, bool) {
		switch strings.ToLower(s) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		}
		return false, false
	})
}

// listEnvOrDefault splits a comma separated value and drops blank entries.
func listEnvOrDefault(key string, fallback []string) []string {
	return lookup(key, fallback, func(s string) ([]string, bool) {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, len(out) > 0
	})
}
