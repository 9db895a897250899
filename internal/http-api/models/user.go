package models

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"column:password_hash;size:120;not null" json:"-"` // never serialized
	CreationDate time.Time `gorm:"column:creation_date;default:CURRENT_TIMESTAMP" json:"creation_date"`
}

func (User) TableName() string {
	return "user"
}
