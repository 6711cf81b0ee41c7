package config

import (
	"time"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/scrape"
)

// FetchConfig controls how league pages are downloaded.
type FetchConfig struct {
	Timeout       time.Duration `validate:"gt=0"`
	UserAgent     string        `validate:"required"`
	EredivisieURL string        `validate:"omitempty,url"`
	KKDURL        string        `validate:"omitempty,url"`
}

func loadFetch() FetchConfig {
	return FetchConfig{
		Timeout:       durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		UserAgent:     envOrDefault(envFetchUserAgent, scrape.DefaultUserAgent),
		EredivisieURL: envOrDefault(envEredivisieURL, ""),
		KKDURL:        envOrDefault(envKKDURL, ""),
	}
}

// URL returns the configured page for league, or the league default.
func (f FetchConfig) URL(league standings.League) string {
	var override string
	switch league {
	case standings.LeagueEredivisie:
		override = f.EredivisieURL
	case standings.LeagueKKD:
		override = f.KKDURL
	}
	if override != "" {
		return override
	}
	info, _ := standings.Info(league)
	return info.DefaultURL
}
