package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	partnerapp "github.com/coop-erp/backend/internal/application/partner"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCustomerRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))

	svc := partnerapp.NewCustomerService(persistence.NewGormCustomerRepository(db), zap.NewNop())
	h := NewCustomerHandler(svc)

	router := gin.New()
	router.POST("/customers", h.Create)
	router.GET("/customers", h.List)
	router.GET("/customers/:id", h.Get)
	return router
}

func TestCustomerHandler_CreateAndGet(t *testing.T) {
	router := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(`{"name":"Koperasi Maju","email":"admin@maju.id"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "Koperasi Maju", created.Data.Name)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/"+created.Data.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@maju.id")
}

func TestCustomerHandler_GetMissingReturns404(t *testing.T) {
	router := newCustomerRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCustomerHandler_InvalidIDReturns400(t *testing.T) {
	router := newCustomerRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid ID format")
}

func TestCustomerHandler_ListPaginationMeta(t *testing.T) {
	router := newCustomerRouter(t)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/customers",
			strings.NewReader(`{"name":"`+name+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers?page=1&page_size=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, int64(3), listed.Meta.Total)
	assert.Equal(t, 2, listed.Meta.TotalPages)
}
