package item

// --- Item Domain Model ---

// Item is the persisted resource. ID is assigned by the database on insert
// and never changes; Name is never blank. Description is nil when unset.
type Item struct {
	ID          int64
	Name        string
	Description *string
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description *string
}

// UpdateItemInput carries a partial update. A nil field keeps the stored value.
type UpdateItemInput struct {
	ID          int64
	Name        *string
	Description *string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
