package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-history/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserHasDependents = errors.New("user still owns tasks or task history")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

type UserService interface {
	// CreateUser inserts a user with the given name and returns it
	// with the generated ID.
	CreateUser(ctx context.Context, name string) (*models.User, error)

	// GetUserByID returns ErrUserNotFound if the user doesn't exist.
	GetUserByID(ctx context.Context, id uint64) (*models.User, error)

	// UpdateUser overwrites the user's name, even with an empty one.
	//
	// It returns ErrUserNotFound if the user doesn't exist.
	UpdateUser(ctx context.Context, params UpdateUserParams) (*models.User, error)

	// DeleteUser removes the user row.
	//
	// It returns ErrUserNotFound if the user doesn't exist or
	// ErrUserHasDependents if tasks or task history still reference it.
	DeleteUser(ctx context.Context, id uint64) error
}

type TaskService interface {
	// GetTasksByUserID returns every task of the user, or an empty
	// slice if there are none.
	//
	// It returns ErrUserNotFound if the user doesn't exist.
	GetTasksByUserID(ctx context.Context, userID uint64) ([]*models.Task, error)

	// CreateTask inserts a task owned by the given user. An empty status
	// defaults to models.StatusPending.
	//
	// It returns ErrUserNotFound if the user doesn't exist or
	// ErrInvalidTaskStatus if the status isn't one of models.Statuses.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// DeleteTask snapshots the task into the task history and deletes it
	// in a single transaction. It returns the inserted history row.
	//
	// It returns ErrUserNotFound if the user doesn't exist or
	// ErrTaskNotFound if the user has no task with the given ID.
	DeleteTask(ctx context.Context, params DeleteTaskParams) (*models.TaskHistory, error)
}

type TaskHistoryService interface {
	// GetTaskHistoryByUserID returns the user's history rows in
	// insertion order.
	//
	// It returns ErrUserNotFound if the user doesn't exist.
	GetTaskHistoryByUserID(ctx context.Context, userID uint64) ([]*models.TaskHistory, error)
}

type UpdateUserParams struct {
	ID   uint64
	Name string
}

type CreateTaskParams struct {
	UserID      uint64
	Title       string
	Description *string
	Status      string
}

type DeleteTaskParams struct {
	ID     uint64
	UserID uint64
}
