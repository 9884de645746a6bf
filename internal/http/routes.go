package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "team-tracker.com/team-tracker/internal/http/middlewares"
	"team-tracker.com/team-tracker/internal/ratelimit"
)

type RouteOptions struct {
	Counter            ratelimit.Counter
	RateLimitPerMinute int
	JWTSecret          []byte
}

func Register(e *echo.Echo, h *Handler, opts RouteOptions) {
	api := e.Group("/api",
		middleware.RateLimiter(opts.Counter, opts.RateLimitPerMinute, time.Minute),
		middleware.Authenticate(opts.JWTSecret),
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)
	api.GET("/users/:id/tasks", h.ListUserTasks)

	api.POST("/projects", h.CreateProject)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:id", h.GetProject)
	api.PUT("/projects/:id", h.UpdateProject)
	api.DELETE("/projects/:id", h.DeleteProject)
	api.GET("/projects/:id/tasks", h.ListProjectTasks)

	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.GET("/tasks/:id/history", h.ListTaskHistory)
	api.GET("/tasks/:id/audit-log", h.ListTaskAuditLog)
	api.GET("/tasks/:id/comments", h.ListTaskComments)

	api.POST("/comments", h.CreateComment)
	api.GET("/comments/:id", h.GetComment)
	api.PUT("/comments/:id", h.UpdateComment)
	api.DELETE("/comments/:id", h.DeleteComment)

	api.GET("/reports/performance", h.Performance)
	api.GET("/reports/completed-tasks", h.CompletedTasksSince)
	api.GET("/reports/users-with-completed-tasks", h.UsersWithCompletedTasks)
}
