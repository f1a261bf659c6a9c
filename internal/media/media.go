// Package media converts between files, data URIs and the bare base64
// payloads sent to the model.
package media

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize caps files loaded from disk.
const MaxFileSize = 20 << 20

// DefaultAudioMIMEType is used when an audio clip arrives untagged.
const DefaultAudioMIMEType = "audio/webm"

// extensionTypes covers formats http.DetectContentType misses.
var extensionTypes = map[string]string{
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".opus": "audio/ogg",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".heic": "image/heic",
}

// Payload returns the base64 data of a data URI: everything after the
// first comma. Strings without a comma are returned unchanged.
func Payload(uri string) string {
	if i := strings.IndexByte(uri, ','); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// MIMEType returns the media type declared by a data URI, or "" when
// uri has no data URI header.
func MIMEType(uri string) string {
	if !strings.HasPrefix(uri, "data:") {
		return ""
	}
	header, _, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return ""
	}
	mt, _, _ := strings.Cut(header, ";")
	return mt
}

// DataURI encodes data as a base64 data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// LoadFile reads path and returns it as a data URI along with its media
// type.
func LoadFile(path string) (uri string, mimeType string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return "", "", fmt.Errorf("%s is %d bytes, limit is %d", path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}

	mimeType = detect(path, data)
	return DataURI(mimeType, data), mimeType, nil
}

func detect(path string, data []byte) string {
	if mt, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	mt, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return mt
}

// IsImage reports whether mimeType names an image.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// IsAudio reports whether mimeType names an audio clip.
func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/")
}
