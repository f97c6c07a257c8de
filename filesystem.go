package schemagen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// FileSystem is the storage the generator reads state from and writes
// generated files to.
type FileSystem interface {
	// DirHasEntries reports whether dir exists and is not empty.
	DirHasEntries(dir string) (bool, error)
	MkdirAll(dir string) error
	WriteFile(path string, data []byte) error
}

// OSFS is the operating system file system.
type OSFS struct{}

func (OSFS) DirHasEntries(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

func (OSFS) MkdirAll(dir string) error { return os.MkdirAll(dir, 0o755) }

func (OSFS) WriteFile(path string, data []byte) error { return os.WriteFile(path, data, 0o644) }

// MemFS keeps files in memory. It is safe for concurrent use.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]struct{}
}

func NewMemFS() *MemFS {
	return &MemFS{files: map[string][]byte{}, dirs: map[string]struct{}{}}
}

func (m *MemFS) DirHasEntries(dir string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := filepath.Clean(dir) + string(filepath.Separator)
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemFS) MkdirAll(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(dir)] = struct{}{}
	return nil
}

func (m *MemFS) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = slices.Clone(data)
	return nil
}

// ReadFile returns a copy of a stored file.
func (m *MemFS) ReadFile(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[filepath.Clean(path)]
	return slices.Clone(b), ok
}

// Paths lists stored files, sorted.
func (m *MemFS) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
