// Package blob stores uploaded files in object storage or on local disk.
package blob

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Store persists file contents under a key.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Location returns a human-readable address for a stored key.
	Location(key string) string
}

// Key builds the object key for a user's upload: <user>/<unix-ms>_<name>.
func Key(userID, name string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s/%d_%s", userID, now.UnixMilli(), base)
}
