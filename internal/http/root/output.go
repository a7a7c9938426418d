package root

// GetOutput wraps the greeting body.
type GetOutput struct {
	Body Greeting
}
