package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/services"
)

type Handler interface {
	HandleCreateUser(c *gin.Context)
	HandleGetUser(c *gin.Context)
	HandleUpdateUser(c *gin.Context)
	HandleDeleteUser(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleGetTaskHistory(c *gin.Context)

	HandleHealth(c *gin.Context)

	HandleRequestIDMiddleware(c *gin.Context)
	HandleAccessLogMiddleware(c *gin.Context)
}

type handlerImpl struct {
	logger      zerolog.Logger
	users       services.UserService
	tasks       services.TaskService
	taskHistory services.TaskHistoryService
	// Only used for health checks.
	db *gorm.DB
}

func New(
	logger zerolog.Logger,
	db *gorm.DB,
	userService services.UserService,
	taskService services.TaskService,
	taskHistoryService services.TaskHistoryService,
) Handler {
	return &handlerImpl{
		logger:      logger,
		users:       userService,
		tasks:       taskService,
		taskHistory: taskHistoryService,
		db:          db,
	}
}
