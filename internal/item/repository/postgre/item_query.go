package postgre

import (
	"database/sql"
	"fmt"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// buildListQuery builds the SELECT + ORDER BY for ListItems.
// Only known orderings are accepted; anything else falls back to insertion order.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) string {
	orderBy := opt.OrderBy
	switch orderBy {
	case repo.OrderIDAsc, repo.OrderIDDesc:
	default:
		orderBy = repo.OrderIDAsc
	}
	return fmt.Sprintf(`SELECT id, name, description FROM items ORDER BY %s`, orderBy)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (item.Item, error) {
	var (
		it   item.Item
		desc sql.NullString
	)
	if err := row.Scan(&it.ID, &it.Name, &desc); err != nil {
		return item.Item{}, err
	}
	if desc.Valid {
		d := desc.String
		it.Description = &d
	}
	return it, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
