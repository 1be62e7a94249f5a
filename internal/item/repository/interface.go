package repository

import (
	"context"

	"items-api/internal/item"
)

// Repository is the composed interface for the item data store.
// Every method runs on the session carried by ctx.
type Repository interface {
	ItemRepository
	SchemaRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Lookups that match no row return a zero-value Item (ID == 0) and no error.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
}

// SchemaRepository creates the persistence schema when it is missing.
type SchemaRepository interface {
	EnsureSchema(ctx context.Context) error
}
