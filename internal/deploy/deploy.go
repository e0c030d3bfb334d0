// Package deploy uploads a generated icon set to S3 so designers and CI can
// pull the current placeholder assets without a checkout.
package deploy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config holds publish configuration.
type Config struct {
	Bucket  string
	Region  string
	Prefix  string // key prefix inside the bucket, e.g. "appicon"
	DryRun  bool
	Verbose bool
}

// Result holds the results of a publish run.
type Result struct {
	Uploaded int
	Skipped  int
	Errors   []error
}

// FileEntry represents a local file to publish.
type FileEntry struct {
	Path        string // relative path from the icon dir, forward slashes
	ContentType string // MIME type
	Hash        string // hex-encoded SHA-256 hash
}

// S3Client is an interface for the S3 operations used during publishing.
type S3Client interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType, sha256Hash string) error
	ListObjects(ctx context.Context, prefix string) (map[string]string, error) // key -> hash metadata
}

// ContentTypeForExt returns the MIME type for a file extension. The set
// only ever contains PNGs, the JSON manifest, and the odd contact sheet.
func ContentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".json":
		return "application/json; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// HashFile computes the SHA-256 hash of a file and returns it as a hex
// string.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ScanFiles walks the icon directory and returns a FileEntry per file,
// with content type and hash filled in.
func ScanFiles(iconDir string) ([]FileEntry, error) {
	var entries []FileEntry

	err := filepath.Walk(iconDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(iconDir, path)
		if err != nil {
			return fmt.Errorf("computing relative path: %w", err)
		}
		relPath = filepath.ToSlash(relPath)

		hash, err := HashFile(path)
		if err != nil {
			return err
		}

		entries = append(entries, FileEntry{
			Path:        relPath,
			ContentType: ContentTypeForExt(filepath.Ext(path)),
			Hash:        hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}

	return entries, nil
}

// DiffFiles compares local files against a map of remote object hashes and
// returns the files that are new or changed. Remote-only objects are left
// alone: the bucket may hold icon sets for more than one app.
func DiffFiles(local []FileEntry, prefix string, remoteHashes map[string]string) []FileEntry {
	var toUpload []FileEntry
	for _, entry := range local {
		remoteHash, exists := remoteHashes[ObjectKey(prefix, entry.Path)]
		if !exists || remoteHash != entry.Hash {
			toUpload = append(toUpload, entry)
		}
	}
	return toUpload
}

// ObjectKey joins the configured prefix and a relative path into an S3 key.
func ObjectKey(prefix, relPath string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return relPath
	}
	return prefix + "/" + relPath
}

// Publish uploads the icon set using the provided client.
//
// Steps:
//  1. Scan local files
//  2. List remote objects under the prefix
//  3. Diff to find uploads (unchanged files are skipped)
//  4. If DryRun, print the plan and return
//  5. Upload new/changed files
func Publish(ctx context.Context, cfg Config, iconDir string, client S3Client) (*Result, error) {
	result := &Result{}

	localFiles, err := ScanFiles(iconDir)
	if err != nil {
		return nil, fmt.Errorf("scanning local files: %w", err)
	}

	remoteHashes, err := client.ListObjects(ctx, strings.Trim(cfg.Prefix, "/"))
	if err != nil {
		return nil, fmt.Errorf("listing remote objects: %w", err)
	}

	toUpload := DiffFiles(localFiles, cfg.Prefix, remoteHashes)
	result.Skipped = len(localFiles) - len(toUpload)

	if cfg.DryRun {
		for _, f := range toUpload {
			fmt.Printf("[dry-run] upload: %s (%s)\n", ObjectKey(cfg.Prefix, f.Path), f.ContentType)
		}
		result.Uploaded = len(toUpload)
		return result, nil
	}

	for _, entry := range toUpload {
		fullPath := filepath.Join(iconDir, filepath.FromSlash(entry.Path))
		f, err := os.Open(fullPath)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("opening %s: %w", entry.Path, err))
			continue
		}

		key := ObjectKey(cfg.Prefix, entry.Path)
		err = client.PutObject(ctx, key, f, entry.ContentType, entry.Hash)
		f.Close()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("uploading %s: %w", key, err))
			continue
		}
		result.Uploaded++
		if cfg.Verbose {
			fmt.Printf("uploaded: %s\n", key)
		}
	}

	return result, nil
}
