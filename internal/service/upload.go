package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/digitpainter/vote-v4/internal/config"
)

var (
	ErrImageTooLarge    = errors.New("image exceeds the maximum allowed size")
	ErrImageTypeInvalid = errors.New("file is not an allowed image type")
)

type UploadService struct {
	conf    *config.AppConfig
	baseURL string
}

func NewUploadService(conf *config.AppConfig) *UploadService {
	return &UploadService{
		conf:    conf,
		baseURL: conf.API.BaseURL,
	}
}

// SaveImage validates and stores an uploaded image, returning its public
// URL. The stored name is random; the original filename only contributes
// its extension.
func (s *UploadService) SaveImage(header *multipart.FileHeader) (string, error) {
	limits := s.conf.UploadLimits()

	if header.Size > limits.MaxSizeBytes {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extAllowed(ext, limits.AllowedExtensions) {
		return "", ErrImageTypeInvalid
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("header.Open -> %w", err)
	}
	defer file.Close()

	// Sniff the real content type; the extension alone is client-supplied.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("file.Read -> %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", ErrImageTypeInvalid
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("file.Seek -> %w", err)
	}

	if err = os.MkdirAll(limits.Dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(limits.Dir, name))
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return fmt.Sprintf("%v/uploads/images/%v", s.baseURL, name), nil
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}

	return false
}
