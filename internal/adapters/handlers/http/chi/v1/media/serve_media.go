package media

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/cache"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// ServeMediaV1 is the read-through cache proxy. A warm id streams straight
// from disk; a cold id streams from the object store to the client while the
// cache entry fills alongside.
func (h *HandlerV1) ServeMediaV1(w http.ResponseWriter, r *http.Request) {
	remoteID := chi.URLParam(r, "remoteID")
	if remoteID == "" {
		http.Error(w, "remote id is required", http.StatusBadRequest)
		return
	}

	if f, err := h.cache.Open(remoteID); err == nil {
		defer f.Close()
		w.Header().Set("Cache-Control", h.cacheControl)
		if _, err := io.Copy(w, f); err != nil {
			h.logger.Warn("client went away during cached media stream", "remoteID", remoteID, "error", err)
		}
		return
	} else if errors.Is(err, cache.ErrBadKey) {
		http.Error(w, "invalid remote id", http.StatusBadRequest)
		return
	}

	src, err := h.storage.FetchStream(r.Context(), remoteID)
	if err != nil {
		if !errors.Is(err, domain.ErrObjectNotFound) {
			h.logger.Error("failed to fetch remote object", "remoteID", remoteID, "error", err)
		}
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	defer src.Close()

	w.Header().Set("Cache-Control", h.cacheControl)
	if err := h.cache.WriteThrough(remoteID, w, src); err != nil {
		// Headers are long gone; all that is left is to cut the stream short
		// and let the client retry against a clean cache.
		h.logger.Error("remote stream failed mid-transfer", "remoteID", remoteID, "error", err)
	}
}
