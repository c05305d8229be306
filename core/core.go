package core

import "log/slog"

type Config struct {
	Storage KVStorage

	// Optional config
	HTTP         HTTPAdapter
	CacheAdapter ClaimsCache
	DisableCache bool
	GroupsClaim  string
	StorageKey   string
	Mirror       MirrorConfig
	Assignment   Assignment
	Logger       *slog.Logger
}

type Taskgate struct {
	Resolver *Resolver
	Store    *TaskStore
	Policy   *Policy
	Mirror   MirrorConfig
	Logger   *slog.Logger
}
