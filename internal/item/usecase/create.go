package usecase

import (
	"context"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// Create persists a new Item; the database assigns its ID.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if uc.isBlank(input.Name) {
		return item.CreateItemOutput{}, item.ErrInvalidPayload
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return item.CreateItemOutput{}, uc.mapRepoError(ctx, "uc.Create CreateItem", err)
	}

	return item.CreateItemOutput{Item: it}, nil
}
