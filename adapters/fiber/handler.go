package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/taskgate/taskgate"
)

// sessionFrom returns the session the middleware resolved for this request.
func sessionFrom(c fiber.Ctx) *taskgate.Session {
	if session, ok := c.Locals("session").(*taskgate.Session); ok {
		return session
	}
	return &taskgate.Session{Role: taskgate.RoleNone, Groups: []string{}}
}

// handleGetSession returns the resolved role and group memberships.
func handleGetSession(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(sessionFrom(c))
	}
}

// handleListTasks returns the role-scoped, filtered read model.
func handleListTasks(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		filter := taskgate.Filter{
			Search:   c.Query("search"),
			Status:   taskgate.Status(c.Query("status")),
			Priority: taskgate.Priority(c.Query("priority")),
		}

		tasks := tg.VisibleTasks(sessionFrom(c), filter)

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"tasks":  tasks,
			"counts": tg.StatusCounts(),
		})
	}
}

func handleCreateTask(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input taskgate.CreateTaskInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		task, err := tg.CreateTask(sessionFrom(c), input)
		if err != nil {
			return handleTaskError(c, err)
		}

		return c.Status(http.StatusCreated).JSON(task)
	}
}

func handleGetTask(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		task, ok := tg.GetTask(c.Params("id"))
		if !ok {
			return handleTaskError(c, taskgate.ErrTaskNotFound)
		}

		return c.Status(http.StatusOK).JSON(task)
	}
}

func handleUpdateTask(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input taskgate.UpdateTaskInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		task, err := tg.UpdateTask(sessionFrom(c), c.Params("id"), input)
		if err != nil {
			return handleTaskError(c, err)
		}

		return c.Status(http.StatusOK).JSON(task)
	}
}

// handleCycleStatus advances the task one step through the status cycle.
func handleCycleStatus(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		task, err := tg.CycleTaskStatus(sessionFrom(c), c.Params("id"))
		if err != nil {
			return handleTaskError(c, err)
		}

		return c.Status(http.StatusOK).JSON(task)
	}
}

func handleDeleteTask(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		deleted, err := tg.DeleteTask(sessionFrom(c), c.Params("id"))
		if err != nil {
			return handleTaskError(c, err)
		}
		if !deleted {
			return handleTaskError(c, taskgate.ErrTaskNotFound)
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"deleted": true,
		})
	}
}

// handleTaskError maps sentinel errors to HTTP status codes.
func handleTaskError(c fiber.Ctx, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, taskgate.ErrNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, taskgate.ErrTaskNotFound):
		status = http.StatusNotFound
	case errors.Is(err, taskgate.ErrTitleRequired),
		errors.Is(err, taskgate.ErrInvalidStatus),
		errors.Is(err, taskgate.ErrInvalidPriority):
		status = http.StatusBadRequest
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
