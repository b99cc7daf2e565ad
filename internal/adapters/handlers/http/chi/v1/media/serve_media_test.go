package media_test

import (
	"bytes"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/cache"
	chirouter "github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/handlers/http/chi"
	media2 "github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/identity"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/queue"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/storage"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

func newServeRouter(t *testing.T, mockStorage *storage.MockStorage) http2.Handler {
	t.Helper()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	diskCache, err := cache.NewDisk(t.TempDir(), discardLogger)
	require.NoError(t, err)

	cfg := config.UploadConfig{TempDir: t.TempDir(), MaxFileSize: 10 << 20}
	cacheCfg := config.CacheConfig{ClientTTL: 8760 * time.Hour}
	handler := media2.NewMediaHandlerV1(queue.NewMockJobQueue(), mockStorage, diskCache, identity.NewHeaderResolver(), cfg, cacheCfg, discardLogger)

	return chirouter.NewRouter(discardLogger, handler, http2.NotFoundHandler(), "")
}

func TestServeMediaV1(t *testing.T) {

	t.Run("success - cold then warm serve identical bytes", func(t *testing.T) {
		// Arrange
		payload := []byte("object bytes")
		mockStorage := storage.NewMockStorage()
		mockStorage.On("FetchStream", mock.Anything, "obj-1.png").
			Return(io.NopCloser(bytes.NewReader(payload)), nil).
			Once()

		h := newServeRouter(t, mockStorage)

		// Act: first request misses the cache and streams from the store
		cold := httptest.NewRecorder()
		h.ServeHTTP(cold, httptest.NewRequest(http2.MethodGet, "/media/obj-1.png", nil))

		// Second request must come from disk; the Once expectation above
		// fails the test if the store is consulted again.
		warm := httptest.NewRecorder()
		h.ServeHTTP(warm, httptest.NewRequest(http2.MethodGet, "/media/obj-1.png", nil))

		// Assert
		assert.Equal(t, http2.StatusOK, cold.Code)
		assert.Equal(t, payload, cold.Body.Bytes())
		assert.Equal(t, "public, max-age=31536000, immutable", cold.Header().Get("Cache-Control"))

		assert.Equal(t, http2.StatusOK, warm.Code)
		assert.Equal(t, payload, warm.Body.Bytes())
		assert.Equal(t, "public, max-age=31536000, immutable", warm.Header().Get("Cache-Control"))

		mockStorage.AssertExpectations(t)
		mockStorage.AssertNumberOfCalls(t, "FetchStream", 1)
	})

	t.Run("error - unknown object returns 404", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		mockStorage.On("FetchStream", mock.Anything, "missing.png").
			Return(nil, domain.ErrObjectNotFound)

		h := newServeRouter(t, mockStorage)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/media/missing.png", nil))

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("error - traversal key is rejected", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		h := newServeRouter(t, mockStorage)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/media/..", nil))

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockStorage.AssertNotCalled(t, "FetchStream", mock.Anything, mock.Anything)
	})

	t.Run("success - store failure mid-stream leaves no cache entry", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		mockStorage.On("FetchStream", mock.Anything, "flaky.png").
			Return(io.NopCloser(io.MultiReader(bytes.NewReader([]byte("partial")), errReader{})), nil).
			Once()
		mockStorage.On("FetchStream", mock.Anything, "flaky.png").
			Return(io.NopCloser(bytes.NewReader([]byte("complete"))), nil).
			Once()

		h := newServeRouter(t, mockStorage)

		// Act: the first transfer dies mid-stream, the retry must hit the
		// store again instead of a poisoned cache entry
		first := httptest.NewRecorder()
		h.ServeHTTP(first, httptest.NewRequest(http2.MethodGet, "/media/flaky.png", nil))

		second := httptest.NewRecorder()
		h.ServeHTTP(second, httptest.NewRequest(http2.MethodGet, "/media/flaky.png", nil))

		// Assert
		assert.Equal(t, http2.StatusOK, second.Code)
		assert.Equal(t, []byte("complete"), second.Body.Bytes())
		mockStorage.AssertExpectations(t)
		mockStorage.AssertNumberOfCalls(t, "FetchStream", 2)
	})
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, assert.AnError }
