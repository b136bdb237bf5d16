package homegym

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/homegym/homegym/core"
	"github.com/homegym/homegym/pkg/cache"
	"github.com/homegym/homegym/services"
)

// interfaces
type (
	HTTPAdapter    = core.HTTPAdapter
	MessageCache   = core.MessageCache
	RankingHandler = core.RankingHandler
)

// structs
type (
	Gym         = core.Gym
	Config      = core.Config
	CacheConfig = core.CacheConfig
)

type (
	Account        = core.Account
	Workout        = core.Workout
	Membership     = core.Membership
	SessionManager = core.SessionManager
	CacheStats     = core.CacheStats
)

const defaultBasePath = "/api/gym"

// Constructors & helpers (convenience re-exports)
var (
	NewMembership     = core.NewMembership
	NewSessionManager = core.NewSessionManager
	NewCalendar       = services.NewCalendar
	NewExerciseLog    = services.NewExerciseLog
	NewRanking        = services.NewRanking
	NewInMemoryCache  = cache.NewInMemory
)

const NotRankedMessage = services.NotRankedMessage

var (
	ErrInvalidUsername    = core.ErrInvalidUsername
	ErrInvalidPassword    = core.ErrInvalidPassword
	ErrInvalidEmail       = core.ErrInvalidEmail
	ErrInvalidDate        = core.ErrInvalidDate
	ErrInvalidWorkoutName = core.ErrInvalidWorkoutName
	ErrInvalidDuration    = core.ErrInvalidDuration
)

var (
	ErrUsernameExists = core.ErrUsernameExists
	ErrEmailExists    = core.ErrEmailExists
)

var (
	ErrLoginRequired   = core.ErrLoginRequired
	ErrAccountNotFound = core.ErrAccountNotFound
	ErrCacheNotFound   = core.ErrCacheNotFound
)

var (
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
)

func New(config Config) (*Gym, error) {
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	membership := config.Membership
	if membership == nil {
		membership = core.NewMembership()
	}

	cacheAdapter := config.CacheAdapter
	if cacheAdapter == nil && !config.DisableCache {
		cacheAdapter = cache.NewInMemory(CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	gym := &Gym{
		Membership: membership,
		Sessions:   core.NewSessionManager(membership),
		Ranking:    services.NewRanking(membership),
		ShareCache: cacheAdapter,
		Logger:     logger,
		BasePath:   basePath,
	}

	if err := config.HTTP.RegisterRoutes(gym); err != nil {
		return nil, err
	}

	return gym, nil
}
