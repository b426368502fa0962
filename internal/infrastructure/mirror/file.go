// Package mirror provides the local snapshot mirror backends. Whichever
// backend is configured, the contract is the same: one serialized snapshot
// under one fixed location, read once at startup and rewritten wholesale
// after every mutation.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// FileMirror stores the snapshot as a JSON document on disk.
type FileMirror struct {
	mu   sync.Mutex
	path string
}

// OpenFile prepares a file-backed mirror at path, creating the parent
// directory when needed. The file itself is created on first Save.
func OpenFile(path string) (*FileMirror, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mirror dir: %w", err)
	}
	return &FileMirror{path: path}, nil
}

func (m *FileMirror) Load(_ context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.Open(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ports.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("mirror open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mirror stat: %w", err)
	}
	if info.Size() == 0 {
		return nil, ports.ErrNoSnapshot
	}

	var snap domain.Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("mirror decode: %w", err)
	}
	return &snap, nil
}

// Save rewrites the whole snapshot, truncating any previous content, and
// syncs so a crash right after a mutation cannot lose the new state.
func (m *FileMirror) Save(_ context.Context, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.OpenFile(m.path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return countSave(fmt.Errorf("mirror open: %w", err))
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return countSave(fmt.Errorf("mirror encode: %w", err))
	}

	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return countSave(fmt.Errorf("mirror seek: %w", err))
	}
	if err := f.Truncate(pos); err != nil {
		return countSave(fmt.Errorf("mirror truncate: %w", err))
	}
	return countSave(f.Sync())
}

func (m *FileMirror) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
