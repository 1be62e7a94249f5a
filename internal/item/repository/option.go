package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description *string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions holds sorting parameters for listing Items.
// OrderBy must be one of the ListOrder constants; empty means OrderIDAsc.
type ListItemsOptions struct {
	OrderBy ListOrder
}

type ListOrder string

const (
	OrderIDAsc  ListOrder = "id ASC"
	OrderIDDesc ListOrder = "id DESC"
)

// UpdateItemOptions holds parameters for updating an existing Item.
// Nil fields keep their stored value.
type UpdateItemOptions struct {
	ID          int64
	Name        *string
	Description *string
}
