package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk writes uploads under Dir; the router serves Dir at BaseURL.
type Disk struct {
	Dir     string
	BaseURL string
}

func NewDisk(dir, baseURL string) *Disk {
	return &Disk{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (d *Disk) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := filepath.Clean("/" + name)
	savePath := filepath.Join(d.Dir, clean)
	if err := os.MkdirAll(filepath.Dir(savePath), os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	out, err := os.Create(savePath)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	if err := out.Sync(); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return d.BaseURL + filepath.ToSlash(clean), nil
}
