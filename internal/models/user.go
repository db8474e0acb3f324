package models

type User struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null"`
}
