package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDirectory walks root, filters by exts (or the raw-extraction defaults),
// skips hidden entries if requested and fingerprints every match. Files whose
// content repeats an earlier match are flagged Duplicate. Results are sorted
// by path.
func ScanDirectory(ctx context.Context, root string, exts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	allowed := extSet(exts)
	reg := NewRegistry()

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && path != root && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !matches(path, allowed) {
			return nil
		}
		stats.Matched++

		_, r, err := ReadFile(path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		if first, fresh := reg.Mark(r.HashHex, r.Path); !fresh {
			r.Duplicate = true
			stats.Duplicates++
			slog.Debug("ingest.scan.duplicate", "path", r.Path, "first", first)
		}
		results = append(results, r)
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	slog.Debug("ingest.scan.ok", "root", root, "matched", stats.Matched, "failed", stats.Failed)
	return results, stats, nil
}
