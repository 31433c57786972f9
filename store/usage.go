package store

import "github.com/m-mizutani/goerr/v2"

const (
	// WarningThreshold is the usage count at which the advisory band ends.
	WarningThreshold = 20

	warningWindow = 4
)

// InWarningBand reports whether count is in (WarningThreshold-4, WarningThreshold].
func InWarningBand(count int) bool {
	return count > WarningThreshold-warningWindow && count <= WarningThreshold
}

// Usage is the counter of single-shot invocations.
type Usage struct {
	file *File
}

// Usage returns the usage counter.
func (f *File) Usage() *Usage {
	return &Usage{file: f}
}

// Get returns the current count, 0 when never set.
func (u *Usage) Get() int {
	u.file.mu.Lock()
	defer u.file.mu.Unlock()
	return u.file.doc.PromptCount
}

// Set overwrites the count.
func (u *Usage) Set(count int) error {
	if count < 0 {
		return goerr.New("usage count must not be negative", goerr.V("count", count))
	}
	return u.file.update(func(doc *document) {
		doc.PromptCount = count
	})
}

// Increment adds one to the count and returns the new value.
func (u *Usage) Increment() (int, error) {
	var count int
	err := u.file.update(func(doc *document) {
		doc.PromptCount++
		count = doc.PromptCount
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Reset sets the count back to 0.
func (u *Usage) Reset() error {
	return u.Set(0)
}
