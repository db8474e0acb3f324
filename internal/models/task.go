package models

const (
	StatusPending = "Pending"
	StatusDoing   = "Doing"
	StatusBlocked = "Blocked"
	StatusDone    = "Done"
)

// Statuses lists every value the valid_status check constraint accepts.
var Statuses = []string{StatusPending, StatusDoing, StatusBlocked, StatusDone}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Task struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"size:100;not null"`
	Description *string `gorm:"size:500"`
	Status      string  `gorm:"size:10;not null;default:'Pending';check:valid_status,status IN ('Pending','Doing','Blocked','Done')"`
	UserID      uint64  `gorm:"not null;index"`

	// Only declares the foreign key for migrations, never loaded.
	User *User `gorm:"constraint:OnDelete:RESTRICT"`
}
