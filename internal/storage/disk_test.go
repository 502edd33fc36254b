package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "mosaic/internal/errors"
)

// fakeImage builds a payload of the given size whose leading bytes carry the
// magic number for the wanted format.
func fakeImage(magic []byte, size int) []byte {
	buf := make([]byte, size)
	copy(buf, magic)
	return buf
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	gifMagic  = []byte("GIF89a")
)

func TestDiskStore_SaveJPEG(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	payload := fakeImage(jpegMagic, 2<<20)
	path, err := store.Save(context.Background(), "profilePicture", "me.jpg", int64(len(payload)), bytes.NewReader(payload))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "profilePicture-"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	written, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestDiskStore_ExtensionFromContentType(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	payload := fakeImage(pngMagic, 1024)
	path, err := store.Save(context.Background(), "coverPhoto", "upload", int64(len(payload)), bytes.NewReader(payload))

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".png"))
}

func TestDiskStore_RejectsOversize(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	payload := fakeImage(jpegMagic, 6<<20)
	_, err = store.Save(context.Background(), "profilePicture", "big.jpg", int64(len(payload)), bytes.NewReader(payload))

	assert.Equal(t, apperrors.ErrFileTooLarge, err)
}

func TestDiskStore_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	assert.NoError(t, err)

	payload := fakeImage(gifMagic, 1024)
	_, err = store.Save(context.Background(), "profilePicture", "anim.gif", int64(len(payload)), bytes.NewReader(payload))
	assert.Equal(t, apperrors.ErrFileType, err)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
