package models

import "time"

type Notification struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Message        string    `gorm:"size:250;uniqueIndex;not null" json:"message"`
	TTL            int       `gorm:"column:ttl;not null" json:"ttl"`
	CreationDate   time.Time `gorm:"column:creation_date;default:CURRENT_TIMESTAMP" json:"creation_date"`
	CategoryID     int64     `gorm:"column:notification_category_id;not null;index" json:"notification_category_id"`
	DisplayedTimes int       `gorm:"default:0;not null" json:"displayed_times"`
	DisplayedOnce  bool      `gorm:"default:false;not null" json:"displayed_once"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"notification_category,omitempty"`
}

func (Notification) TableName() string {
	return "notification"
}
