package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("master data not found")

// Ref is one referential check: the identified row must exist and be active.
type Ref struct {
	Kind Kind
	ID   string
}

// RefError reports which reference failed; it unwraps to ErrNotFound so
// callers can classify it without caring about the kind.
type RefError struct {
	Kind Kind
}

func (e *RefError) Error() string {
	return e.Kind.Meta().Label + " data not found"
}

func (e *RefError) Unwrap() error {
	return ErrNotFound
}

// ValidateRefs runs the checks in order and stops at the first failure, so
// the error always names a single entity. Callers put the acting user last.
func ValidateRefs(ctx context.Context, repo Repository, refs ...Ref) error {
	for _, ref := range refs {
		ok, err := repo.Exists(ctx, ref.Kind, ref.ID)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Kind: ref.Kind}
		}
	}
	return nil
}
