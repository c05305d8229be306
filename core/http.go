package core

// HTTPAdapter mounts the library's consumer-facing API on a web framework.
type HTTPAdapter interface {
	RegisterRoutes(tg *Taskgate) error
}
