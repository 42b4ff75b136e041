// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and the Article join entity, along with
// their validation rules and domain-specific errors.
package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Article joins one Author to one Magazine under a title.
// The title is immutable; author and magazine can be reassigned through
// validating setters.
type Article struct {
	ID        uuid.UUID
	CreatedAt time.Time

	title string

	mu       sync.RWMutex
	author   *Author
	magazine *Magazine
}

// NewArticle validates author, magazine and title (in that order) and returns
// a new Article. It does not register the article.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := ValidateAuthorRef(author); err != nil {
		return nil, err
	}
	if err := ValidateMagazineRef(magazine); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Article{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		title:     title,
		author:    author,
		magazine:  magazine,
	}, nil
}

// Title returns the article title.
func (a *Article) Title() string {
	return a.title
}

// SetTitle always fails: titles cannot change after construction.
func (a *Article) SetTitle(string) error {
	return &ValidationError{Kind: KindImmutable, Field: "title", Message: "title cannot be changed after the article is created"}
}

// Author returns the current author.
func (a *Article) Author() *Author {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.author
}

// Magazine returns the magazine the article is currently published in.
func (a *Article) Magazine() *Magazine {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.magazine
}

// SetAuthor reassigns the article to another author.
func (a *Article) SetAuthor(author *Author) error {
	if err := ValidateAuthorRef(author); err != nil {
		return err
	}
	a.mu.Lock()
	a.author = author
	a.mu.Unlock()
	return nil
}

// SetMagazine moves the article to another magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := ValidateMagazineRef(magazine); err != nil {
		return err
	}
	a.mu.Lock()
	a.magazine = magazine
	a.mu.Unlock()
	return nil
}

// WrittenBy reports whether author is the article's current author.
func (a *Article) WrittenBy(author *Author) bool {
	current := a.Author()
	return author != nil && current != nil && current.ID == author.ID
}

// PublishedIn reports whether the article is currently published in magazine.
func (a *Article) PublishedIn(magazine *Magazine) bool {
	current := a.Magazine()
	return magazine != nil && current != nil && current.ID == magazine.ID
}
