package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Magazine is the publisher side of the author/magazine relation.
// Name and category stay mutable but every write is validated; a rejected
// write leaves the previous value in place.
type Magazine struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.RWMutex
	name     string
	category string
}

// NewMagazine validates name and category and returns a new Magazine.
// The magazine is not registered anywhere; see the magazine use case for that.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	return &Magazine{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		name:      name,
		category:  category,
	}, nil
}

// Name returns the current magazine name.
func (m *Magazine) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// Category returns the current magazine category.
func (m *Magazine) Category() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.category
}

// SetName renames the magazine. Names outside 2..16 characters are rejected.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.mu.Lock()
	m.name = name
	m.mu.Unlock()
	return nil
}

// SetCategory changes the category. Empty categories are rejected.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.mu.Lock()
	m.category = category
	m.mu.Unlock()
	return nil
}

func (m *Magazine) String() string {
	return m.Name()
}
