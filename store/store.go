// Package store persists the per-user state of the CLI in a single YAML file: API keys per provider
// and the single-shot usage counter.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the directory created under the user config directory.
	DirName = "horizon-cli"
	// FileName is the store file name.
	FileName = "config.yaml"
)

type document struct {
	APIKeys     map[string]string `yaml:"api_keys,omitempty"`
	PromptCount int               `yaml:"prompt_count"`
}

// File is the persisted store. Every mutation is written to disk before it returns.
type File struct {
	path string

	mu  sync.Mutex
	doc document
}

// DefaultPath returns <UserConfigDir>/horizon-cli/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Open loads the store at path. A missing file is an empty store; it is created on the first write.
func Open(path string) (*File, error) {
	f := &File{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, goerr.Wrap(err, "failed to read store file", goerr.V("path", path))
	}

	if err := yaml.Unmarshal(raw, &f.doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse store file", goerr.V("path", path))
	}
	return f, nil
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// update applies fn to the document and persists it. The in-memory state is left unchanged when the write fails.
func (f *File) update(fn func(doc *document)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.doc
	next.APIKeys = make(map[string]string, len(f.doc.APIKeys))
	for k, v := range f.doc.APIKeys {
		next.APIKeys[k] = v
	}
	fn(&next)

	if err := f.write(next); err != nil {
		return err
	}
	f.doc = next
	return nil
}

func (f *File) write(doc document) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return goerr.Wrap(err, "failed to encode store file")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return goerr.Wrap(err, "failed to create store directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary store file", goerr.V("dir", dir))
	}
	name := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return goerr.Wrap(err, "failed to write store file", goerr.V("path", name))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return goerr.Wrap(err, "failed to close store file", goerr.V("path", name))
	}
	if err := os.Chmod(name, 0600); err != nil {
		_ = os.Remove(name)
		return goerr.Wrap(err, "failed to set store file mode", goerr.V("path", name))
	}
	if err := os.Rename(name, f.path); err != nil {
		_ = os.Remove(name)
		return goerr.Wrap(err, "failed to replace store file", goerr.V("path", f.path))
	}
	return nil
}
