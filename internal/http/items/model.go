package items

// Item echoes the requested item and query.
type Item struct {
	ItemID int64   `json:"item_id" doc:"Item identifier" example:"42"`
	Q      *string `json:"q" doc:"Query string, null when absent" nullable:"true" example:"foo"`
}
