package docstore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/pkg/logger"
)

// LocalStore saves documents to the local filesystem.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a new LocalStore rooted at basePath.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStore{basePath: basePath}, nil
}

// Save stores an uploaded file under a unique name and returns its reference.
func (ls *LocalStore) Save(fileHeader *multipart.FileHeader, subPath string) (models.DocRef, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	ref := uniqueFilename
	if subPath != "" {
		ref = filepath.Join(subPath, uniqueFilename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("ref", ref).Msg("Document saved")
	return models.DocRef(ref), nil
}

// Delete removes a stored document. Missing files are treated as already
// deleted.
func (ls *LocalStore) Delete(ref models.DocRef) error {
	if ref == "" {
		return nil
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(string(ref)))
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("ref", string(ref)).Msg("Document to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
