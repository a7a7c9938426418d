package root

// Greeting is the body returned by the root endpoint.
type Greeting struct {
	Hello string `json:"Hello" doc:"Greeting target" example:"World"`
}
