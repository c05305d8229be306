package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/taskgate/taskgate"
)

const defaultBasePath = "/api"

type Adapter struct {
	app      *fiber.App
	basePath string
}

var _ taskgate.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app, basePath: defaultBasePath}
}

// NewWithBasePath mounts the API under a custom prefix instead of /api.
func NewWithBasePath(app *fiber.App, basePath string) *Adapter {
	if basePath == "" {
		basePath = defaultBasePath
	}
	return &Adapter{app: app, basePath: basePath}
}

func (a *Adapter) RegisterRoutes(tg *taskgate.Taskgate) error {
	api := a.app.Group(a.basePath)

	// Every request resolves the session and synchronizes the credential
	// mirror before reaching a handler.
	api.Use(a.sessionMiddleware(tg))

	api.Get("/session", handleGetSession(tg))

	api.Get("/tasks", handleListTasks(tg))
	api.Post("/tasks", handleCreateTask(tg))
	api.Get("/tasks/:id", handleGetTask(tg))
	api.Put("/tasks/:id", handleUpdateTask(tg))
	api.Patch("/tasks/:id/status", handleCycleStatus(tg))
	api.Delete("/tasks/:id", handleDeleteTask(tg))

	return nil
}
