package v1

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API on router. metrics may be nil.
func RegisterRoutes(router gin.IRouter, h Handler, metrics *Metrics) {
	registerJSONTagNames()

	router.Use(h.HandleRequestIDMiddleware)
	router.Use(h.HandleAccessLogMiddleware)
	if metrics != nil {
		router.Use(metrics.HandleMiddleware)
		router.GET("/metrics", metrics.Handler())
	}

	router.GET("/healthz", h.HandleHealth)

	usersRouter := router.Group("/users")
	usersRouter.POST("", h.HandleCreateUser)
	usersRouter.GET("/:id", h.HandleGetUser)
	usersRouter.PUT("/:id", h.HandleUpdateUser)
	usersRouter.DELETE("/:id", h.HandleDeleteUser)

	usersRouter.GET("/:id/tasks", h.HandleGetTasks)
	usersRouter.POST("/:id/tasks", h.HandleCreateTask)
	usersRouter.DELETE("/:id/tasks/:task_id", h.HandleDeleteTask)

	usersRouter.GET("/:id/task-history", h.HandleGetTaskHistory)
}
