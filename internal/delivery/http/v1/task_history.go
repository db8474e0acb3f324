package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-history/internal/models"
)

type taskHistoryResponse struct {
	ID          uint64    `json:"id"`
	TaskID      uint64    `json:"task_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	UserID      uint64    `json:"user_id"`
	DeletedAt   time.Time `json:"deleted_at"`
}

func newTaskHistoryResponse(history *models.TaskHistory) taskHistoryResponse {
	return taskHistoryResponse{
		ID:          history.ID,
		TaskID:      history.TaskID,
		Title:       history.Title,
		Description: history.Description,
		Status:      history.Status,
		UserID:      history.UserID,
		DeletedAt:   history.DeletedAt.UTC(),
	}
}

func (h *handlerImpl) HandleGetTaskHistory(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	history, err := h.taskHistory.GetTaskHistoryByUserID(c.Request.Context(), userID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	response := make([]taskHistoryResponse, len(history))
	for i, entry := range history {
		response[i] = newTaskHistoryResponse(entry)
	}

	c.JSON(http.StatusOK, response)
}
