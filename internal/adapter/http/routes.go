package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Nazary21/Teammatic/internal/adapter/http/handlers"
	"github.com/Nazary21/Teammatic/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	projectHandler *handlers.ProjectHandler,
	collectionHandler *handlers.CollectionHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/projects", projectHandler.ListProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)
		api.GET("/projects/:id/collections", projectHandler.ListProjectCollections)

		api.POST("/collections", collectionHandler.CreateCollection)
		api.DELETE("/collections/:id", collectionHandler.DeleteCollection)
	}
}
