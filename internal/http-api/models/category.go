package models

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:150;uniqueIndex;not null" json:"name"`

	// Associations
	Notifications []Notification `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"notifications,omitempty"`
}

func (Category) TableName() string {
	return "notification_category"
}
