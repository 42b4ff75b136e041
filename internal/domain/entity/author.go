package entity

import "github.com/google/uuid"

// Author is the writer side of the author/magazine relation.
// The name is fixed at construction; there is no setter.
type Author struct {
	ID   uuid.UUID
	name string
}

// NewAuthor validates name and returns a new Author with a fresh ID.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{ID: uuid.New(), name: name}, nil
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

func (a *Author) String() string {
	return a.name
}
