package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath using a random unique filename
	// and returns its public URL.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// SaveFileAs stores the upload under subPath keeping the uploaded (base) filename.
	// An existing file with the same name is overwritten.
	SaveFileAs(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a file previously returned by one of the Save methods
	DeleteFile(fileURL string) error

	// GetFullPath returns the full filesystem path for a given file URL
	GetFullPath(fileURL string) string
}
