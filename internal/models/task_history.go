package models

import "time"

// TaskHistory is the snapshot of a task taken right before it is deleted.
// Rows are only ever inserted.
type TaskHistory struct {
	ID          uint64    `gorm:"primaryKey"`
	TaskID      uint64    `gorm:"not null;index"`
	Title       string    `gorm:"size:100;not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"size:20;not null"`
	UserID      uint64    `gorm:"not null;index"`
	DeletedAt   time.Time `gorm:"not null"`

	User *User `gorm:"constraint:OnDelete:RESTRICT"`
}

func NewTaskHistory(task *Task, deletedAt time.Time) *TaskHistory {
	return &TaskHistory{
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
		DeletedAt:   deletedAt.UTC(),
	}
}
