package entity

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Length bounds are counted in characters (runes), not bytes.
const (
	MagazineNameMinLen = 2
	MagazineNameMaxLen = 16
	ArticleTitleMinLen = 5
	ArticleTitleMaxLen = 50
)

// validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

var (
	magazineNameTag = fmt.Sprintf("min=%d,max=%d", MagazineNameMinLen, MagazineNameMaxLen)
	articleTitleTag = fmt.Sprintf("min=%d,max=%d", ArticleTitleMinLen, ArticleTitleMaxLen)
)

// ValidateAuthorName checks that an author name is a non-empty string.
func ValidateAuthorName(name string) error {
	return checkVar("name", name, "required", "name must be a non-empty string")
}

// ValidateMagazineName checks the 2..16 character bound of a magazine name.
func ValidateMagazineName(name string) error {
	return checkVar("name", name, magazineNameTag,
		fmt.Sprintf("name must be a string between %d and %d characters", MagazineNameMinLen, MagazineNameMaxLen))
}

// ValidateCategory checks that a magazine category is a non-empty string.
func ValidateCategory(category string) error {
	return checkVar("category", category, "required", "category must be a non-empty string")
}

// ValidateTitle checks the 5..50 character bound of an article title.
func ValidateTitle(title string) error {
	return checkVar("title", title, articleTitleTag,
		fmt.Sprintf("title must be a string between %d and %d characters", ArticleTitleMinLen, ArticleTitleMaxLen))
}

// ValidateAuthorRef reports a type validation error unless a was built by NewAuthor.
func ValidateAuthorRef(a *Author) error {
	if a == nil || a.ID == uuid.Nil {
		return &ValidationError{Kind: KindType, Field: "author", Message: "author must be an instance of Author"}
	}
	return nil
}

// ValidateMagazineRef reports a type validation error unless m was built by NewMagazine.
func ValidateMagazineRef(m *Magazine) error {
	if m == nil || m.ID == uuid.Nil {
		return &ValidationError{Kind: KindType, Field: "magazine", Message: "magazine must be an instance of Magazine"}
	}
	return nil
}

func checkVar(field, value, tag, message string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return &ValidationError{Kind: KindRange, Field: field, Message: message}
	}
	// only reachable with a malformed tag
	return fmt.Errorf("validate %s: %w", field, err)
}
