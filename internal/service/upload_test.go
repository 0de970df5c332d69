package service_test

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitpainter/vote-v4/internal/config"
	"github.com/digitpainter/vote-v4/internal/service"
)

func newUploadService(t *testing.T) (*service.UploadService, string) {
	t.Helper()

	dir := t.TempDir()
	conf := &config.AppConfig{
		API: &config.APIConfig{BaseURL: "http://localhost:8000"},
		Upload: &config.UploadConfig{
			Dir:               dir,
			MaxSizeBytes:      1 << 20,
			AllowedExtensions: []string{".png", ".jpg", ".jpeg", ".gif"},
		},
	}

	return service.NewUploadService(conf), dir
}

// fileHeader builds a real multipart.FileHeader the way gin receives one.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(4<<20))

	return req.MultipartForm.File["file"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUploadServiceSaveImage(t *testing.T) {
	svc, dir := newUploadService(t)

	url, err := svc.SaveImage(fileHeader(t, "portrait.png", pngBytes(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8000/uploads/images/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	// The stored name never reuses the client-supplied one.
	assert.NotContains(t, url, "portrait")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
}

func TestUploadServiceSaveImage_Refusals(t *testing.T) {
	svc, dir := newUploadService(t)

	_, err := svc.SaveImage(fileHeader(t, "notes.txt", []byte("hello")))
	require.ErrorIs(t, err, service.ErrImageTypeInvalid)

	// A payload that merely claims to be an image is sniffed out.
	_, err = svc.SaveImage(fileHeader(t, "fake.png", []byte("just text, no pixels")))
	require.ErrorIs(t, err, service.ErrImageTypeInvalid)

	_, err = svc.SaveImage(fileHeader(t, "huge.png", make([]byte, 2<<20)))
	require.ErrorIs(t, err, service.ErrImageTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
