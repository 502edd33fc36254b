package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	apperrors "mosaic/internal/errors"
)

// MaxFileSize is the upload size ceiling (5 MiB).
const MaxFileSize = 5 << 20

// sniffLen is how many leading bytes content-type detection needs.
const sniffLen = 512

// Store persists an uploaded image and returns the path or URL to record on
// the user profile.
type Store interface {
	Save(ctx context.Context, field, filename string, size int64, r io.Reader) (string, error)
}

// checkUpload enforces the size ceiling and the JPEG/PNG restriction. It
// returns the sniffed content type and the header bytes already consumed from
// the reader.
func checkUpload(size int64, r io.Reader) (contentType string, header []byte, err error) {
	if size > MaxFileSize {
		return "", nil, apperrors.ErrFileTooLarge
	}

	header = make([]byte, sniffLen)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	header = header[:n]

	contentType = http.DetectContentType(header)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", nil, apperrors.ErrFileType
	}
	return contentType, header, nil
}

// objectName builds the stored filename: <field>-<timestamp><ext>. The
// extension comes from the client filename, normalized by content type when
// missing.
func objectName(field, filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		switch contentType {
		case "image/png":
			ext = ".png"
		default:
			ext = ".jpg"
		}
	}
	return fmt.Sprintf("%s-%d%s", field, time.Now().UnixMilli(), ext)
}
