package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/common"
)

// maxFileSize bounds a single raw-extraction file.
const maxFileSize = 16 << 20

// ReadFile loads one raw-extraction file and fingerprints its content.
func ReadFile(path string) ([]byte, FileResult, error) {
	out := FileResult{Path: path}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, out, fmt.Errorf("abs path: %w", err)
	}
	out.Path = abs

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !AllowedExt(ext) {
		return nil, out, common.NewAppError("UNSUPPORTED_EXT",
			fmt.Sprintf("unsupported or missing extension %q", ext), common.ErrInvalidInput)
	}
	out.Ext = ext

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, out, common.NewAppError("FILE_NOT_FOUND", abs, common.ErrNotFound)
		}
		return nil, out, fmt.Errorf("stat: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, out, common.NewAppError("FILE_TOO_LARGE",
			fmt.Sprintf("%s is %d bytes", abs, info.Size()), common.ErrInvalidInput)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, out, fmt.Errorf("read: %w", err)
	}
	sum := sha256.Sum256(data)
	out.Size = int64(len(data))
	out.HashHex = hex.EncodeToString(sum[:])
	return data, out, nil
}

// Registry remembers content hashes so the same label payload is processed once.
type Registry struct {
	mu   sync.Mutex
	seen map[string]string
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]string)}
}

// Mark records hash for path. It returns the path first seen with the same
// hash and false when the content is a duplicate.
func (r *Registry) Mark(hash, path string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if first, ok := r.seen[hash]; ok {
		return first, false
	}
	r.seen[hash] = path
	return path, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
