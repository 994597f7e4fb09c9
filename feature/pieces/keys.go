package pieces

import (
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ObjectKey derives the bucket key of a piece image. Keys always use forward
// slashes, so the same file maps to the same key on every platform.
func ObjectKey(prefix, set, color, filename string) string {
	return path.Join(prefix, set, color, filename)
}

// ContentType returns the MIME type for an image file name.
func ContentType(filename string) string {
	if format, err := imaging.FormatFromFilename(filename); err == nil {
		switch format {
		case imaging.PNG:
			return "image/png"
		case imaging.JPEG:
			return "image/jpeg"
		case imaging.GIF:
			return "image/gif"
		case imaging.TIFF:
			return "image/tiff"
		case imaging.BMP:
			return "image/bmp"
		}
	}
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// hasExtension matches the file extension exactly, so "king.PNG" is not a
// ".png" image.
func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if ext == want {
			return true
		}
	}
	return false
}
