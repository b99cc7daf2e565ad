package media

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// V1UploadMediaResponse is the response to a queued upload
type V1UploadMediaResponse struct {
	Status string `json:"status"`
}

var uploadKinds = map[string]domain.UploadKind{
	string(domain.UploadKindBanner):        domain.UploadKindBanner,
	string(domain.UploadKindAssetFile):     domain.UploadKindAssetFile,
	string(domain.UploadKindShowcaseImage): domain.UploadKindShowcaseImage,
}

// UploadMediaV1 accepts a multipart upload, spools it to a temp file and
// queues the job. The response goes out as soon as the job is accepted; the
// outcome reaches the client later as an upload:complete or upload:error
// real-time event.
func (h *HandlerV1) UploadMediaV1(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxFileSize)

	kind, ok := uploadKinds[r.FormValue("kind")]
	if !ok {
		http.Error(w, "unknown upload kind", http.StatusBadRequest)
		return
	}

	ownerID := r.FormValue("ownerId")
	if ownerID == "" {
		http.Error(w, "owner id is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	localPath, err := h.spool(file, header.Filename)
	if err != nil {
		h.logger.Error("failed to spool upload", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	job := domain.UploadJob{
		LocalPath:     localPath,
		DisplayName:   filepath.Base(header.Filename),
		MimeType:      header.Header.Get("Content-Type"),
		OwnerRecordID: ownerID,
		Kind:          kind,
		IsPublic:      strings.EqualFold(r.FormValue("isPublic"), "true"),
	}
	if id := h.resolver.Resolve(r); id != nil {
		job.RequestingUserID = &id.UserID
	}

	h.queue.Submit(job)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(V1UploadMediaResponse{Status: "queued"}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// spool copies the part to a uniquely named file in the temp dir so no two
// uploads ever contend on a path
func (h *HandlerV1) spool(src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.cfg.TempDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(h.cfg.TempDir, uuid.New().String()+strings.ToLower(filepath.Ext(filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
