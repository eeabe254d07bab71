package uploads

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Backup copies the upload directory into a timestamped folder once a day
// and prunes folders older than Retention.
type Backup struct {
	SrcDir    string
	BackupDir string
	Retention time.Duration
	Hour, Min int
}

// Run blocks until ctx is done.
func (b Backup) Run(ctx context.Context) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), b.Hour, b.Min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next image backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if dest, err := b.Snapshot(time.Now()); err != nil {
			log.Printf("❌ Failed to back up images: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", dest)
		}
		b.Cleanup(time.Now())
	}
}

// Snapshot copies SrcDir into BackupDir/<timestamp> and returns that path.
func (b Backup) Snapshot(at time.Time) (string, error) {
	dest := filepath.Join(b.BackupDir, at.Format("2006-01-02_15-04-05"))
	return dest, copyDir(b.SrcDir, dest)
}

// Cleanup removes backup folders last modified before now - Retention.
func (b Backup) Cleanup(now time.Time) {
	entries, err := os.ReadDir(b.BackupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := now.Add(-b.Retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(b.BackupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			err = copyDir(srcPath, destPath)
		} else {
			err = copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
