package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImageStorage(t *testing.T) (ImageStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalImageStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestSaveImage_WritesUniqueFile(t *testing.T) {
	s, dir := newTestImageStorage(t)
	ctx := context.Background()

	first, err := s.SaveImage(ctx, "My Ficus.JPG", bytes.NewBufferString("img"))
	require.NoError(t, err)
	second, err := s.SaveImage(ctx, "My Ficus.JPG", bytes.NewBufferString("img"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, ImagePathPrefix))
	assert.True(t, strings.HasSuffix(first, "_My_Ficus.JPG"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(first, ImagePathPrefix)))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}

func TestSaveImage_RejectsUnsupportedType(t *testing.T) {
	s, dir := newTestImageStorage(t)

	_, err := s.SaveImage(context.Background(), "notes.pdf", bytes.NewBufferString("x"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDeleteImage(t *testing.T) {
	s, dir := newTestImageStorage(t)
	ctx := context.Background()

	rel, err := s.SaveImage(ctx, "leaf.png", bytes.NewBufferString("x"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteImage(ctx, rel))
	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(rel, ImagePathPrefix)))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, s.DeleteImage(ctx, rel))
	// not ours
	assert.NoError(t, s.DeleteImage(ctx, "https://example.com/leaf.png"))
	assert.NoError(t, s.DeleteImage(ctx, ""))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ficus.jpg", want: "ficus.jpg"},
		{in: "my plant photo.png", want: "my_plant_photo.png"},
		{in: "../../etc/passwd.gif", want: "passwd.gif"},
		{in: `C:\photos\aloe.jpeg`, want: "aloe.jpeg"},
		{in: ".hidden.png", want: "hidden.png"},
		{in: "kaktüs (1).png", want: "kakts_1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestIsAllowedImage(t *testing.T) {
	assert.True(t, IsAllowedImage("a.PNG"))
	assert.True(t, IsAllowedImage("a.jpeg"))
	assert.False(t, IsAllowedImage("a.webp"))
	assert.False(t, IsAllowedImage("png"))
}
