package upload

import (
	"context"
	"fmt"
	"os"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// Handle runs one upload job. Expected failures (missing temp file, object
// store errors, database errors) are logged and, when a requesting user is
// known, reported through an upload:error event; they are never returned, so
// the queue's concurrency slot frees immediately and the pool keeps going.
func (w *Worker) Handle(ctx context.Context, job domain.UploadJob) error {
	if _, err := os.Stat(job.LocalPath); err != nil {
		// Nothing was written, nothing to clean up, nobody to tell.
		w.logger.Error("upload job discarded, local file missing",
			"path", job.LocalPath, "owner", job.OwnerRecordID, "kind", job.Kind,
			"error", domain.ErrFileNotFound)
		return nil
	}
	defer w.removeTempFile(job.LocalPath)

	result, err := w.storage.Upload(ctx, job.LocalPath, job.DisplayName, job.MimeType, job.IsPublic)
	if err != nil {
		w.fail(job, fmt.Sprintf("upload of %s failed", job.DisplayName), err)
		return nil
	}

	if err := w.reconcile(ctx, job, result); err != nil {
		// The remote object now exists but the listing was not updated.
		// No automatic rollback; the user and the log both hear about it.
		w.fail(job, fmt.Sprintf("upload of %s could not be saved", job.DisplayName), err)
		return nil
	}

	w.logger.Info("upload job completed",
		"owner", job.OwnerRecordID, "kind", job.Kind, "remoteID", result.RemoteID)

	if job.RequestingUserID != nil {
		w.bus.EmitToUser(*job.RequestingUserID, domain.Event{
			Type: domain.EventTypeUploadComplete,
			Payload: domain.UploadCompletePayload{
				OwnerRecordID: job.OwnerRecordID,
				Kind:          job.Kind,
				URL:           result.PublicURL,
			},
		})
	}

	return nil
}

// reconcile applies exactly one persisted write depending on the job kind
func (w *Worker) reconcile(ctx context.Context, job domain.UploadJob, result *domain.UploadResult) error {
	switch job.Kind {
	case domain.UploadKindBanner:
		return w.repo.UpdateBannerURL(ctx, job.OwnerRecordID, result.PublicURL)
	case domain.UploadKindAssetFile:
		return w.repo.UpdateAssetFile(ctx, job.OwnerRecordID, result.RemoteID)
	case domain.UploadKindShowcaseImage:
		return w.repo.AppendShowcaseURL(ctx, job.OwnerRecordID, result.PublicURL)
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidUploadKind, job.Kind)
	}
}

func (w *Worker) fail(job domain.UploadJob, message string, err error) {
	w.logger.Error("upload job failed",
		"owner", job.OwnerRecordID, "kind", job.Kind, "error", err)

	if job.RequestingUserID == nil {
		return
	}
	w.bus.EmitToUser(*job.RequestingUserID, domain.Event{
		Type: domain.EventTypeUploadError,
		Payload: domain.UploadErrorPayload{
			OwnerRecordID: job.OwnerRecordID,
			Kind:          job.Kind,
			Message:       message,
		},
	})
}

func (w *Worker) removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		w.logger.Error("failed to remove temp file", "path", path, "error", err)
	}
}
