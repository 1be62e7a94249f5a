package usecase

import (
	"context"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		return item.DetailItemOutput{}, uc.mapRepoError(ctx, "uc.Detail GetOneItem", err)
	}
	if it.ID == 0 {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update overwrites only the fields present in input. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	if input.Name != nil && uc.isBlank(*input.Name) {
		return item.UpdateItemOutput{}, item.ErrInvalidPayload
	}

	// Existence check and write happen in one statement.
	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return item.UpdateItemOutput{}, uc.mapRepoError(ctx, "uc.Update UpdateItem", err)
	}
	if it.ID == 0 {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.DeleteItem(ctx, id)
	if err != nil {
		return uc.mapRepoError(ctx, "uc.Delete DeleteItem", err)
	}
	if !deleted {
		return item.ErrItemNotFound
	}
	return nil
}
