package dto

import (
	"fmt"

	"notifyhub/internal/http-api/models"
)

// CreateCategoryRequest: payload for creating a notification category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=3"`
}

// UpdateCategoryRequest: partial-update payload; a nil Name means "not
// provided". omitnil keeps the min check active for a present empty string.
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitnil,min=3"`
}

// CategoryResponse: client-facing category representation with a self link
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CategoryDetailResponse: a category together with its notifications
type CategoryDetailResponse struct {
	Category      CategoryResponse       `json:"category"`
	Notifications []NotificationResponse `json:"notifications"`
}

func FromCategoryModel(m models.Category, base string) CategoryResponse {
	return CategoryResponse{
		ID:   m.ID,
		Name: m.Name,
		URL:  fmt.Sprintf("%s/notification_categories/%d", base, m.ID),
	}
}

func FromCategoryDetail(m models.Category, base string) CategoryDetailResponse {
	notifications := make([]NotificationResponse, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		if n.Category == nil {
			// nested rows reference their parent
			n.Category = &models.Category{ID: m.ID, Name: m.Name}
		}
		notifications = append(notifications, FromNotificationModel(n, base))
	}
	return CategoryDetailResponse{
		Category:      FromCategoryModel(m, base),
		Notifications: notifications,
	}
}
