// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFromQuery(query string) PaginationParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	params := paramsFromQuery("?page=2&limit=10&q=maskara&category=Ruj")
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "maskara", params.Search)
	assert.Equal(t, "Ruj", params.Category)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFromQuery("")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)

	// Out-of-range values fall back to defaults.
	params = paramsFromQuery("?page=0&limit=500")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(PaginationParams{Page: 1, Limit: 10}, 25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = PageBounds(PaginationParams{Page: 3, Limit: 10}, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	// A page past the end yields an empty window.
	start, end = PageBounds(PaginationParams{Page: 9, Limit: 10}, 25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]string{"a", "b"}, 25, PaginationParams{Page: 2, Limit: 10})
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.TotalPages)
}
