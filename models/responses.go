package models

// MessageResponse is the generic JSON envelope used for informational
// responses ({"message": "..."}): the root greeting, "Access Denied",
// "Route Not Found" and the global error handler all share this shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse is the envelope for field-validation failures.
// Messages preserve both order and exact text; they are product-facing
// contract strings, not internal codes.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// FaultResponse is emitted by the global error handler for uncaught
// failures. The Error field is intentionally an empty object so that
// storage-layer internals never leak to clients.
type FaultResponse struct {
	Message string   `json:"message"`
	Error   struct{} `json:"error"`
}
