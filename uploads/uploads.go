// Package uploads stores product images and hands back public URLs.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader puts an object under name and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// ObjectName builds a collision-free object key for a user's upload:
// <user>/<unix millis>-<random>-<cleaned file name>.
func ObjectName(userID, filename string, now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%d-%s-%s", userID, now.UnixMilli(), suffix, SanitizeFilename(filename))
}

// SanitizeFilename keeps the base name and reduces it to letters, digits,
// dots, dashes and underscores. Spaces become underscores.
func SanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	name := strings.TrimLeft(b.String(), ".")
	if name == "" {
		return "image"
	}
	return name
}
