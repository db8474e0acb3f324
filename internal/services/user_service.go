package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/models"
	"github.com/adanyl0v/go-task-history/internal/storage"
)

type userServiceImpl struct {
	logger zerolog.Logger
	db     *gorm.DB
}

func NewUserService(
	logger zerolog.Logger,
	db *gorm.DB,
) UserService {
	return &userServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{Name: name}

	err := s.db.WithContext(ctx).Create(user).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}
	s.logger.Debug().
		Uint64("user_id", user.ID).
		Msg("inserted user")

	s.logger.Info().
		Uint64("user_id", user.ID).
		Msg("created user")
	return user, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id uint64) (*models.User, error) {
	user, err := findUser(s.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.Error().
				Uint64("user_id", id).
				Msg("user not found")
			return nil, err
		}

		s.logger.Error().
			Err(err).
			Uint64("user_id", id).
			Msg("failed to select user by id")
		return nil, err
	}
	s.logger.Debug().
		Uint64("user_id", user.ID).
		Msg("selected user by id")

	s.logger.Info().
		Uint64("user_id", user.ID).
		Msg("user found")
	return user, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, params UpdateUserParams) (*models.User, error) {
	db := s.db.WithContext(ctx)

	user, err := findUser(db, params.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", params.ID).
			Msg("failed to select user by id")
		return nil, err
	}

	// Update with a column name writes zero values too, so an
	// empty name replaces the stored one.
	err = db.Model(user).Update("name", params.Name).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", user.ID).
			Msg("failed to update user")
		return nil, err
	}
	user.Name = params.Name
	s.logger.Debug().
		Uint64("user_id", user.ID).
		Msg("updated user")

	s.logger.Info().
		Uint64("user_id", user.ID).
		Msg("updated user")
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	db := s.db.WithContext(ctx)

	user, err := findUser(db, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint64("user_id", id).
			Msg("failed to select user by id")
		return err
	}

	err = db.Delete(&models.User{}, user.ID).Error
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			s.logger.Error().
				Err(err).
				Uint64("user_id", user.ID).
				Msg("user still referenced")
			return ErrUserHasDependents
		}

		s.logger.Error().
			Err(err).
			Uint64("user_id", user.ID).
			Msg("failed to delete user")
		return err
	}
	s.logger.Debug().
		Uint64("user_id", user.ID).
		Msg("deleted user")

	s.logger.Info().
		Uint64("user_id", user.ID).
		Msg("deleted user")
	return nil
}

// findUser returns ErrUserNotFound instead of gorm.ErrRecordNotFound.
func findUser(db *gorm.DB, id uint64) (*models.User, error) {
	user := new(models.User)
	err := db.Take(user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
