package file

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "file not found")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
	ErrTooLarge        = apperror.New(http.StatusRequestEntityTooLarge, "file exceeds the maximum allowed size")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "unsupported file type")
)

// File is an uploaded object, used for venue photos and user avatars.
type File struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// UploadInput carries an incoming multipart file plus the policy the
// endpoint enforces on it.
type UploadInput struct {
	FileHeader   *multipart.FileHeader
	UserID       string
	MaxSizeBytes int64    // 0 = no limit
	AllowedTypes []string // allowed MIME types; empty = allow all
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
