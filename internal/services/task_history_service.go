package services

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/models"
)

type taskHistoryServiceImpl struct {
	logger zerolog.Logger
	db     *gorm.DB
}

func NewTaskHistoryService(
	logger zerolog.Logger,
	db *gorm.DB,
) TaskHistoryService {
	return &taskHistoryServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *taskHistoryServiceImpl) GetTaskHistoryByUserID(ctx context.Context, userID uint64) ([]*models.TaskHistory, error) {
	db := s.db.WithContext(ctx)

	_, err := findUser(db, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", userID).
			Msg("failed to select user by id")
		return nil, err
	}

	history := make([]*models.TaskHistory, 0)
	err = db.Where("user_id = ?", userID).
		Order("id").
		Find(&history).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", userID).
			Msg("failed to select task history by user id")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(history)).
		Uint64("user_id", userID).
		Msg("selected task history by user id")

	s.logger.Info().
		Int("count", len(history)).
		Uint64("user_id", userID).
		Msg("task history found")
	return history, nil
}
