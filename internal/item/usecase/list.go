package usecase

import (
	"context"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// List returns all Items in insertion order.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{OrderBy: repo.OrderIDAsc})
	if err != nil {
		return item.ListItemsOutput{}, uc.mapRepoError(ctx, "uc.List ListItems", err)
	}
	if items == nil {
		items = []item.Item{}
	}

	return item.ListItemsOutput{Items: items}, nil
}
