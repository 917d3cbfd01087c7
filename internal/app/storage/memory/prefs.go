package memory

import (
	"sync"

	"github.com/perkhub/dashboard/internal/app/storage"
)

// Prefs is an in-memory PreferenceStore, used by tests and as the default when
// no durable path is configured.
type Prefs struct {
	mu      sync.Mutex
	value   string
	present bool
}

var _ storage.PreferenceStore = (*Prefs)(nil)

// NewPrefs creates an empty preference store.
func NewPrefs() *Prefs {
	return &Prefs{}
}

func (p *Prefs) Load() (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.present, nil
}

func (p *Prefs) Save(value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = value
	p.present = true
	return nil
}
