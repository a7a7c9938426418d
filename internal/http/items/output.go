package items

// GetOutput wraps the item echo body.
type GetOutput struct {
	Body Item
}
