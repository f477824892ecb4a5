// Package docstore stores uploaded supporting documents and hands back opaque
// references. The rest of the application never looks inside a reference.
package docstore

import (
	"mime/multipart"

	"github.com/studentvault/backend/internal/app/models"
)

// DocumentStore defines the interface for supporting-document storage.
type DocumentStore interface {
	// Save stores the uploaded file and returns an opaque reference to it.
	Save(fileHeader *multipart.FileHeader, subPath string) (models.DocRef, error)

	// Delete removes a previously stored document. Deleting a reference that
	// no longer resolves is not an error.
	Delete(ref models.DocRef) error
}
