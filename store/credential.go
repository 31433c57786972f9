package store

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Credential is the API key of one provider.
type Credential struct {
	file     *File
	provider string
}

// Credential returns the credential store of provider.
func (f *File) Credential(provider string) *Credential {
	return &Credential{file: f, provider: provider}
}

// Get returns the stored key, or "" when none is stored.
func (c *Credential) Get() string {
	c.file.mu.Lock()
	defer c.file.mu.Unlock()
	return c.file.doc.APIKeys[c.provider]
}

// Set stores key after trimming surrounding whitespace. A blank key is rejected.
func (c *Credential) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return goerr.New("API key cannot be empty", goerr.V("provider", c.provider))
	}
	return c.file.update(func(doc *document) {
		doc.APIKeys[c.provider] = key
	})
}

// Delete removes the stored key. Deleting a missing key is not an error.
func (c *Credential) Delete() error {
	return c.file.update(func(doc *document) {
		delete(doc.APIKeys, c.provider)
	})
}
