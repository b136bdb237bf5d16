package core

import (
	"github.com/rs/zerolog"
)

type Config struct {
	HTTP HTTPAdapter

	// Optional config
	Membership   *Membership
	CacheAdapter MessageCache
	DisableCache bool
	Logger       *zerolog.Logger
	BasePath     string
}

type Gym struct {
	Membership *Membership
	Sessions   *SessionManager
	Ranking    RankingHandler

	// ShareCache fronts rendered share messages. Nil when caching is
	// disabled.
	ShareCache MessageCache

	Logger   zerolog.Logger
	BasePath string
}
