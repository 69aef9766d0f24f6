// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"taskhub/internal/api/adapters/http/middleware"
	"taskhub/internal/api/adapters/http/tasks"
	"taskhub/internal/api/adapters/http/users"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, taskService tasks.TaskService, userService users.UserService) {
	taskHandler := tasks.NewHandler(taskService)
	userHandler := users.NewHandler(userService)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Маршруты задач.
	taskRoutes := app.Group("/tasks")
	taskRoutes.Get("/", taskHandler.ListTasks)
	taskRoutes.Get("/:task_id", taskHandler.GetTask)
	taskRoutes.Post("/", taskHandler.CreateTask)
	taskRoutes.Patch("/:task_id", taskHandler.UpdateTask)
	taskRoutes.Delete("/:task_id", taskHandler.DeleteTask)

	// Маршруты пользователей.
	userRoutes := app.Group("/users")
	userRoutes.Post("/", userHandler.Register)
	userRoutes.Post("/login", userHandler.Login)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
