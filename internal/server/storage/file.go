// Package storage persists the single opaque payload blob the sync server
// holds for its clients. Every accepted push replaces the blob and gets a
// fresh revision id.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avoronov84/domainkeeper/internal/common"
	"github.com/avoronov84/domainkeeper/internal/filex"
	"github.com/google/uuid"
)

const (
	payloadFileName  = "payload.bin"
	revisionFileName = "revision"
)

// BlobStore stores the payload in a single file under dir, with the current
// revision id in a sidecar file. Writes go through a temporary file and a
// rename so a crashed push never leaves a truncated payload behind.
type BlobStore struct {
	dir string
}

func NewBlobStore(dir string) (*BlobStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("init blob store: %w", err)
	}
	return &BlobStore{dir: abs}, nil
}

// Save replaces the stored payload and returns the new revision id.
func (s *BlobStore) Save(payload []byte) (string, error) {
	revision := uuid.NewString()

	tmp, err := os.CreateTemp(s.dir, payloadFileName+".*")
	if err != nil {
		return "", fmt.Errorf("create temp payload: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write payload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close payload: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, payloadFileName)); err != nil {
		return "", fmt.Errorf("replace payload: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, revisionFileName), []byte(revision+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write revision: %w", err)
	}

	return revision, nil
}

// Load returns the stored payload and its revision id. A store that has
// never accepted a push reports common.ErrNotFound.
func (s *BlobStore) Load() ([]byte, string, error) {
	payload, err := os.ReadFile(filepath.Join(s.dir, payloadFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", common.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("read payload: %w", err)
	}

	revision, err := os.ReadFile(filepath.Join(s.dir, revisionFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("read revision: %w", err)
	}

	return payload, strings.TrimSpace(string(revision)), nil
}
