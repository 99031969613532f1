package response_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kidaholy/human-resource-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name           string
		page, pageSize int
		want           []int
		totalPages     int
	}{
		{"first page", 1, 2, []int{1, 2}, 3},
		{"last partial page", 3, 2, []int{5}, 3},
		{"past the end", 9, 2, []int{}, 3},
		{"single page", 1, 20, []int{1, 2, 3, 4, 5}, 1},
		{"page near overflow", 1 << 62, 20, []int{}, 1},
		{"max int page", math.MaxInt, 100, []int{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := response.Paginate(items, tt.page, tt.pageSize)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(5), meta.Total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.page, meta.Page)
		})
	}
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Success(c, http.StatusOK, gin.H{"id": "x"}, nil)

		assert.JSONEq(t, `{"success":true,"data":{"id":"x"}}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Error(c, http.StatusBadRequest, "INVALID_STATE", "already decided by admin", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":{"code":"INVALID_STATE","message":"already decided by admin"}}`, w.Body.String())
	})

	t.Run("abort", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing token")

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"error":{"code":"UNAUTHORIZED","message":"missing token"}}`, w.Body.String())
	})
}
