package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pda-backend/internal/security"
)

const (
	pdfMediaType       = "application/pdf"
	filenameSuffixSize = 9
)

// ErrUnsupportedMediaType rejects anything that does not declare itself
// as a PDF, before any bytes reach disk.
var ErrUnsupportedMediaType = errors.New("only PDF files are allowed")

// UploadStore writes report attachments to a server-local directory and
// serves them back under a static path.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) *UploadStore {
	return &UploadStore{dir: dir}
}

// Save stores the uploaded file under a collision-resistant name and
// returns the path recorded on the owning report row. The directory is
// created on first use.
func (store *UploadStore) Save(header *multipart.FileHeader) (string, error) {
	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil || mediaType != pdfMediaType {
		return "", ErrUnsupportedMediaType
	}

	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	suffix, err := security.RandomSuffix(filenameSuffixSize)
	if err != nil {
		return "", fmt.Errorf("generate filename suffix: %w", err)
	}
	extension := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, extension)
	path := filepath.Join(store.dir, name)

	source, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path, nil
}

// Remove deletes the stored file. A file that is already gone is not an
// error; the owning row must still be deletable.
func (store *UploadStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Dir is the directory served statically under /uploads.
func (store *UploadStore) Dir() string {
	return store.dir
}
