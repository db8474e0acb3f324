package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-history/internal/models"
	"github.com/adanyl0v/go-task-history/internal/services"
)

const taskIDParam = "task_id"

type taskResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	UserID      uint64  `json:"user_id"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
	}
}

type getTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	tasks, err := h.tasks.GetTasksByUserID(c.Request.Context(), userID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	response := getTasksResponse{Tasks: make([]taskResponse, len(tasks))}
	for i, task := range tasks {
		response.Tasks[i] = newTaskResponse(task)
	}

	c.JSON(http.StatusOK, response)
}

type createTaskRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=Pending Doing Blocked Done"`
}

type createTaskResponse struct {
	Message string `json:"message"`
	TaskID  uint64 `json:"task_id"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBindingError(err))
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), services.CreateTaskParams{
		UserID:      userID,
		Title:       *req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, createTaskResponse{
		Message: "Task created successfully",
		TaskID:  task.ID,
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	taskID, ok := h.parseIDParam(c, taskIDParam)
	if !ok {
		abort(c, newNotFoundError(msgTaskNotFound))
		return
	}

	_, err := h.tasks.DeleteTask(c.Request.Context(), services.DeleteTaskParams{
		ID:     taskID,
		UserID: userID,
	})
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
