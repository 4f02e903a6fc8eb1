package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full chi router with mock services and a temporary
// uploads directory.
func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	uploadsDir := t.TempDir()
	svcs := &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
		},
		ItemService: &mockItemService{
			listItemsFn: func(_ context.Context, _ service.ListItemsQuery) (models.ItemListResponse, error) {
				return models.ItemListResponse{ShopItems: []models.ShopItem{}, TotalPages: 0, CurrentPage: 1}, nil
			},
		},
	}

	h := NewHandler(svcs, uploadsDir, logger.Nop())
	return h.Init(), uploadsDir
}

func TestRouter_Welcome(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Welcome to the Shop API!", rr.Body.String())
}

func TestRouter_TraceIDHeaderSet(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// TestRouter_CreateItemRequiresToken verifies that the item creation route
// sits behind the token gate while listing does not.
func TestRouter_CreateItemRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	create := httptest.NewRequest(http.MethodPost, "/shop-items", nil)
	rrCreate := httptest.NewRecorder()
	router.ServeHTTP(rrCreate, create)
	assert.Equal(t, http.StatusForbidden, rrCreate.Code)

	list := httptest.NewRequest(http.MethodGet, "/shop-items", nil)
	rrList := httptest.NewRecorder()
	router.ServeHTTP(rrList, list)
	assert.Equal(t, http.StatusOK, rrList.Code)
}

func TestRouter_ServesUploadedFiles(t *testing.T) {
	router, uploadsDir := newTestRouter(t)

	imagePath := filepath.Join(uploadsDir, "1700000000000-widget.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png-bytes"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/uploads/1700000000000-widget.png", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png-bytes", rr.Body.String())
}

func TestRouter_UnknownUploadIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/nope.png", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
