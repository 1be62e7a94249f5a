package http

import (
	"strings"

	"items-api/internal/item"
)

// --- Request DTOs ---

// createReq is the ItemCreate wire schema. Unknown fields, including id, are ignored.
type createReq struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errBlankName
	}
	if err := checkText("name", &r.Name); err != nil {
		return err
	}
	return checkText("description", r.Description)
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ---

// updateReq is the ItemUpdate wire schema. An omitted key and an explicit
// null are treated alike: the stored value is kept.
type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Name        *string `json:"name"        binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (r updateReq) validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errBlankName
	}
	if err := checkText("name", r.Name); err != nil {
		return err
	}
	return checkText("description", r.Description)
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// checkText rejects values Postgres TEXT cannot store.
func checkText(field string, v *string) error {
	if v != nil && strings.ContainsRune(*v, 0) {
		return fieldRuleError{fieldError{Field: field, Rule: "no_nul"}}
	}
	return nil
}

// --- Response DTOs ---

// itemResp is the ItemRead wire schema.
type itemResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
	}
}

func (h *handler) newCreateResp(out item.CreateItemOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

func (h *handler) newDetailResp(out item.DetailItemOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) itemResp {
	return newItemResp(out.Item)
}
