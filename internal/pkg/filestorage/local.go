package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/google/uuid"
)

// ErrInvalidFilename is returned when an upload has no usable filename
var ErrInvalidFilename = errors.New("invalid file name")

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // URL prefix under which basePath is served
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the directory on the server, baseURL the public prefix it is served at
// (for example "/uploads" or "http://localhost:8080/uploads").
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if baseURL == "" {
		baseURL = "/uploads"
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFileWithPath saves a file to a specified subdirectory under a unique name
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	ext := filepath.Ext(fileHeader.Filename)
	return ls.save(fileHeader, subPath, uuid.New().String()+ext)
}

// SaveFileAs saves a file to a specified subdirectory keeping its original base name
func (ls *LocalStorage) SaveFileAs(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	name := sanitizeFilename(fileHeader.Filename)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, fileHeader.Filename)
	}
	return ls.save(fileHeader, subPath, name)
}

func (ls *LocalStorage) save(fileHeader *multipart.FileHeader, subPath, filename string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	subPath = cleanSubPath(subPath)
	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dstPath := filepath.Join(fullDirPath, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := ls.baseURL + "/" + path.Join(subPath, filename)

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Str("accessible_path", accessiblePath).Msg("File saved successfully")
	return accessiblePath, nil
}

// DeleteFile removes a file from the storage filesystem.
// Returns nil if the file does not exist.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(fileURL)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath maps a public file URL back to its location under basePath.
// URLs outside baseURL yield ""; ".." segments are clamped to basePath.
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	rel, ok := strings.CutPrefix(fileURL, ls.baseURL+"/")
	if !ok {
		return ""
	}

	rel = path.Clean("/" + rel)
	if rel == "/" {
		return ""
	}

	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

func cleanSubPath(subPath string) string {
	if subPath == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean("/"+subPath), "/")
}
