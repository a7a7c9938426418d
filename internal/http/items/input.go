package items

import "github.com/danielgtaylor/huma/v2"

// GetInput binds the item path parameter and the optional q query string.
type GetInput struct {
	ItemID int64  `path:"item_id" doc:"Item identifier" example:"42"`
	Q      string `query:"q" doc:"Optional query string echoed back" example:"foo"`

	// QSet reports whether q appeared in the query string at all, so that
	// ?q= echoes an empty string while a missing q echoes null.
	QSet bool `json:"-"`
}

// Resolve takes q from the raw query string: a bare ?q is the empty
// string and the last value wins when q repeats.
func (i *GetInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	if vs, ok := u.Query()["q"]; ok && len(vs) > 0 {
		i.Q, i.QSet = vs[len(vs)-1], true
	} else {
		i.Q, i.QSet = "", false
	}
	return nil
}

// query returns q as a nullable value.
func (i *GetInput) query() *string {
	if !i.QSet {
		return nil
	}
	q := i.Q
	return &q
}
