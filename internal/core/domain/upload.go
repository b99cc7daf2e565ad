package domain

// UploadKind represents which field of the owning listing an upload targets
type UploadKind string

const (
	UploadKindBanner        UploadKind = "BANNER"
	UploadKindAssetFile     UploadKind = "ASSET_FILE"
	UploadKindShowcaseImage UploadKind = "SHOWCASE_IMAGE"
)

// UploadJob represents one deferred media upload. It lives only in process
// memory between submit and execution; jobs are lost on crash.
type UploadJob struct {
	LocalPath        string
	DisplayName      string
	MimeType         string
	OwnerRecordID    string
	Kind             UploadKind
	IsPublic         bool
	RequestingUserID *int64
}

// UploadResult represents the outcome of a successful object store upload
type UploadResult struct {
	RemoteID  string
	PublicURL string
}
