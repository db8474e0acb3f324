package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/models"
	"github.com/adanyl0v/go-task-history/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     *gorm.DB
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	db *gorm.DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
		now:    time.Now,
	}
}

func (s *taskServiceImpl) GetTasksByUserID(ctx context.Context, userID uint64) ([]*models.Task, error) {
	db := s.db.WithContext(ctx)

	_, err := findUser(db, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", userID).
			Msg("failed to select user by id")
		return nil, err
	}

	tasks := make([]*models.Task, 0)
	err = db.Where("user_id = ?", userID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", userID).
			Msg("failed to select tasks by user id")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Uint64("user_id", userID).
		Msg("selected tasks by user id")

	s.logger.Info().
		Int("count", len(tasks)).
		Uint64("user_id", userID).
		Msg("tasks found")
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	status := params.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.IsValidStatus(status) {
		s.logger.Error().
			Str("status", status).
			Msg("invalid task status")
		return nil, ErrInvalidTaskStatus
	}

	db := s.db.WithContext(ctx)

	_, err := findUser(db, params.UserID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", params.UserID).
			Msg("failed to select user by id")
		return nil, err
	}

	task := &models.Task{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
	}

	err = db.Create(task).Error
	if err != nil {
		switch {
		case storage.IsCheckViolation(err):
			s.logger.Error().
				Err(err).
				Str("status", task.Status).
				Msg("status rejected by check constraint")
			return nil, ErrInvalidTaskStatus
		case storage.IsForeignKeyViolation(err):
			// The user was deleted after the lookup above.
			s.logger.Error().
				Err(err).
				Uint64("user_id", task.UserID).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Uint64("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Uint64("task_id", task.ID).
		Uint64("user_id", task.UserID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, params DeleteTaskParams) (*models.TaskHistory, error) {
	var history *models.TaskHistory

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := findUser(tx, params.UserID)
		if err != nil {
			return err
		}

		task := new(models.Task)
		err = tx.Where("id = ? AND user_id = ?", params.ID, params.UserID).
			Take(task).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		s.logger.Debug().
			Uint64("task_id", task.ID).
			Msg("selected task")

		history = models.NewTaskHistory(task, s.now())
		err = tx.Create(history).Error
		if err != nil {
			return err
		}
		s.logger.Debug().
			Uint64("task_history_id", history.ID).
			Uint64("task_id", task.ID).
			Msg("inserted task history")

		result := tx.Where("id = ? AND user_id = ?", task.ID, task.UserID).
			Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		// A concurrent delete got here first; roll back our snapshot.
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		s.logger.Debug().
			Uint64("task_id", task.ID).
			Msg("deleted task")

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			s.logger.Error().
				Uint64("user_id", params.UserID).
				Msg("user not found")
		case errors.Is(err, ErrTaskNotFound):
			s.logger.Error().
				Uint64("task_id", params.ID).
				Uint64("user_id", params.UserID).
				Msg("task not found")
		default:
			s.logger.Error().
				Err(err).
				Uint64("task_id", params.ID).
				Msg("failed to delete task")
		}
		return nil, err
	}

	s.logger.Info().
		Uint64("task_id", params.ID).
		Uint64("user_id", params.UserID).
		Msg("deleted task")
	return history, nil
}
