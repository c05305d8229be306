package taskgate

import (
	"log/slog"
	"time"

	"github.com/taskgate/taskgate/core"
)

// interfaces
type (
	KVStorage   = core.KVStorage
	ClaimsCache = core.ClaimsCache
	CookieSink  = core.CookieSink
	Assignment  = core.Assignment

	HTTPAdapter = core.HTTPAdapter
)

// structs
type (
	Taskgate     = core.Taskgate
	Config       = core.Config
	MirrorConfig = core.MirrorConfig
	CacheConfig  = core.CacheConfig
)

type (
	Claims       = core.Claims
	Session      = core.Session
	SessionState = core.SessionState
	Credentials  = core.Credentials
	Task         = core.Task
	CacheStats   = core.CacheStats

	CreateTaskInput = core.CreateTaskInput
	UpdateTaskInput = core.UpdateTaskInput
	Filter          = core.Filter
)

type (
	Role     = core.Role
	Status   = core.Status
	Priority = core.Priority
)

const (
	RoleAdmin = core.RoleAdmin
	RoleUser  = core.RoleUser
	RoleNone  = core.RoleNone

	StatusPending    = core.StatusPending
	StatusInProgress = core.StatusInProgress
	StatusCompleted  = core.StatusCompleted

	PriorityLow    = core.PriorityLow
	PriorityMedium = core.PriorityMedium
	PriorityHigh   = core.PriorityHigh
)

// Constructors & helpers (convenience re-exports)
var (
	NewInMemoryCache    = core.NewInMemoryCache
	DefaultMirrorConfig = core.DefaultMirrorConfig
	NextStatus          = core.NextStatus
	ResolveRole         = core.ResolveRole
)

var (
	ErrTaskNotFound    = core.ErrTaskNotFound
	ErrTitleRequired   = core.ErrTitleRequired
	ErrInvalidStatus   = core.ErrInvalidStatus
	ErrInvalidPriority = core.ErrInvalidPriority
)

var (
	ErrNotAllowed     = core.ErrNotAllowed
	ErrStoragePersist = core.ErrStoragePersist
	ErrCacheNotFound  = core.ErrCacheNotFound
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

func New(config Config) (*Taskgate, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cacheAdapter := config.CacheAdapter
	if cacheAdapter == nil && !config.DisableCache {
		cacheAdapter = NewInMemoryCache(CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	mirror := config.Mirror
	if mirror.MaxAge == 0 {
		mirror = DefaultMirrorConfig()
	}

	decoder := core.NewClaimsDecoder(config.GroupsClaim, logger)
	store := core.NewTaskStore(config.Storage, config.StorageKey, logger)

	// Read the persisted collection once at startup; a missing or corrupt
	// value degrades to an empty collection inside Load.
	store.Load()

	tg := &Taskgate{
		Resolver: core.NewResolver(decoder, cacheAdapter),
		Store:    store,
		Policy:   core.NewPolicy(config.Assignment),
		Mirror:   mirror,
		Logger:   logger,
	}

	if config.HTTP != nil {
		if err := config.HTTP.RegisterRoutes(tg); err != nil {
			return nil, err
		}
	}

	return tg, nil
}
