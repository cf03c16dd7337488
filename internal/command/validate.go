package command

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jbeshir/article-manager/internal/domain"
)

// ValidationError reports caller-supplied form data failing required-field
// checks. Validation happens here, above the store; the store itself accepts
// whatever it is given.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func validateArticleForm(form domain.ArticleForm) error {
	if form.Title == "" {
		return ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if form.Author == "" {
		return ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if !slices.Contains(domain.ValidArticleStatuses, form.Status) {
		return ValidationError{Field: "status", Reason: fmt.Sprintf("unrecognised status %q", form.Status)}
	}
	return nil
}

func validateArticlePatch(patch domain.ArticlePatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if patch.Author != nil && *patch.Author == "" {
		return ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if patch.Status != nil && !slices.Contains(domain.ValidArticleStatuses, *patch.Status) {
		return ValidationError{Field: "status", Reason: fmt.Sprintf("unrecognised status %q", *patch.Status)}
	}
	return nil
}
