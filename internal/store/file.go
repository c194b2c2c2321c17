package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileStore keeps one YAML file per key in a directory
type FileStore struct {
	*kvStore
	dir string
}

// NewFileStore creates the directory if needed and opens a store in it
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	b := &fileBackend{dir: dir}
	return &FileStore{
		kvStore: newKVStore(b, codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}, logger),
		dir:     dir,
	}, nil
}

// Dir is the directory holding the store's files
func (fs *FileStore) Dir() string {
	return fs.dir
}

type fileBackend struct {
	dir string
}

func (b *fileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".yaml")
}

func (b *fileBackend) get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errNoKey
	}
	return data, err
}

// set writes through a temporary file so readers never see a partial snapshot
func (b *fileBackend) set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), b.path(key))
}

func (b *fileBackend) del(_ context.Context, key string) error {
	err := os.Remove(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (b *fileBackend) close() error { return nil }
