package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerServesSeededCatalog(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SEED_CATALOG", "true")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 20)

	w = httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/api/cart/summary", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
