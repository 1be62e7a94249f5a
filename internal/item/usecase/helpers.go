package usecase

import (
	"context"
	"errors"
	"strings"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// isBlank reports whether a name carries no visible characters.
func (uc *implUseCase) isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// mapRepoError converts repository failures into domain errors.
// Classified failures are not logged here; the delivery layer picks their level.
// Errors without a domain meaning are logged and pass through unchanged.
func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repo.ErrUnavailable) {
		return item.ErrUnavailable
	}
	uc.l.Errorf(ctx, "%s: %v", op, err)
	return err
}
