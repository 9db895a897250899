package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notifyhub/internal/http-api/models"
	"notifyhub/internal/http-api/service"
)

// MockCategoryService mocks the CategoryService interface
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, name *string) (*models.Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newCategoryRouter(svc service.CategoryService) *gin.Engine {
	router := setupRouter()
	NewCategoryHandler(svc).RegisterRoutes(router.Group("/"))
	return router
}

func TestCategoryList(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	mockSvc.On("List", mock.Anything).Return([]models.Category{
		{ID: 1, Name: "alerts"},
		{ID: 2, Name: "reminders"},
	}, nil)

	req, _ := http.NewRequest("GET", "/notification_categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Categories []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Categories, 2)
	assert.Equal(t, "alerts", response.Categories[0].Name)
	assert.Contains(t, response.Categories[0].URL, "/notification_categories/1")

	mockSvc.AssertExpectations(t)
}

func TestCategoryCreate_Success(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	created := &models.Category{ID: 7, Name: "alerts"}
	mockSvc.On("Create", mock.Anything, "alerts").Return(created, nil)

	body, _ := json.Marshal(gin.H{"name": "alerts"})
	req, _ := http.NewRequest("POST", "/notification_categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "category")
	assert.Contains(t, response, "notifications")

	mockSvc.AssertExpectations(t)
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	mockSvc.On("Create", mock.Anything, "alerts").Return(nil, service.ErrCategoryNameInUse)

	body, _ := json.Marshal(gin.H{"name": "alerts"})
	req, _ := http.NewRequest("POST", "/notification_categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "alerts")

	mockSvc.AssertExpectations(t)
}

func TestCategoryCreate_NameTooShort(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	body, _ := json.Marshal(gin.H{"name": "ab"})
	req, _ := http.NewRequest("POST", "/notification_categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response struct {
		Messages map[string]string `json:"messages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Messages, "name")

	mockSvc.AssertNotCalled(t, "Create")
}

func TestCategoryCreate_EmptyBody(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	req, _ := http.NewRequest("POST", "/notification_categories", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no input data provided")

	mockSvc.AssertNotCalled(t, "Create")
}

func TestCategoryGet_NotFound(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	mockSvc.On("Get", mock.Anything, int64(99)).Return(nil, service.ErrCategoryNotFound)

	req, _ := http.NewRequest("GET", "/notification_categories/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockSvc.AssertExpectations(t)
}

func TestCategoryUpdate_NoFieldsLeavesUnchanged(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	current := &models.Category{ID: 3, Name: "alerts"}
	mockSvc.On("Update", mock.Anything, int64(3), (*string)(nil)).Return(current, nil)

	req, _ := http.NewRequest("PATCH", "/notification_categories/3", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alerts")

	mockSvc.AssertExpectations(t)
}

func TestCategoryUpdate_EmptyNameRejected(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	body, _ := json.Marshal(gin.H{"name": ""})
	req, _ := http.NewRequest("PATCH", "/notification_categories/3", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response struct {
		Messages map[string]string `json:"messages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Messages, "name")

	mockSvc.AssertNotCalled(t, "Update")
}

func TestCategoryDelete_Success(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	mockSvc.On("Delete", mock.Anything, int64(3)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/notification_categories/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	mockSvc.AssertExpectations(t)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(mockSvc)

	mockSvc.On("Delete", mock.Anything, int64(99)).Return(service.ErrCategoryNotFound)

	req, _ := http.NewRequest("DELETE", "/notification_categories/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockSvc.AssertExpectations(t)
}
