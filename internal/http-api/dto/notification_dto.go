package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"notifyhub/internal/http-api/models"
)

// CategoryRef is the polymorphic notification_category input: clients may
// send either a plain string (the category name) or an object with a "name"
// key. Both normalize to the name; null and absent values normalize to an
// empty name, which fails required-field validation downstream.
type CategoryRef struct {
	Name string
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.Name = name
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("notification_category must be a string or an object with a name")
	}
	r.Name = obj.Name
	return nil
}

// CreateNotificationRequest: payload for creating a notification
type CreateNotificationRequest struct {
	Message              string      `json:"message" binding:"required,min=5"`
	TTL                  *int        `json:"ttl" binding:"required"`
	NotificationCategory CategoryRef `json:"notification_category"`
}

// UpdateNotificationRequest: partial-update payload; nil fields mean "not
// provided". omitnil keeps the min check active for a present empty string.
type UpdateNotificationRequest struct {
	Message        *string `json:"message" binding:"omitnil,min=5"`
	TTL            *int    `json:"ttl"`
	DisplayedTimes *int    `json:"displayed_times"`
	DisplayedOnce  *bool   `json:"displayed_once"`
}

// NotificationResponse: client-facing notification representation
type NotificationResponse struct {
	ID                   int64             `json:"id"`
	Message              string            `json:"message"`
	TTL                  int               `json:"ttl"`
	CreationDate         time.Time         `json:"creation_date"`
	DisplayedTimes       int               `json:"displayed_times"`
	DisplayedOnce        bool              `json:"displayed_once"`
	NotificationCategory *CategoryResponse `json:"notification_category,omitempty"`
	URL                  string            `json:"url"`
}

func FromNotificationModel(m models.Notification, base string) NotificationResponse {
	resp := NotificationResponse{
		ID:             m.ID,
		Message:        m.Message,
		TTL:            m.TTL,
		CreationDate:   m.CreationDate,
		DisplayedTimes: m.DisplayedTimes,
		DisplayedOnce:  m.DisplayedOnce,
		URL:            fmt.Sprintf("%s/notifications/%d", base, m.ID),
	}
	if m.Category != nil {
		category := FromCategoryModel(*m.Category, base)
		resp.NotificationCategory = &category
	}
	return resp
}
