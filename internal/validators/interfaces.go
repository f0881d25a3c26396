package validators

import "context"

// Validator validates inbound domain objects before they reach the storage
// layer.
//
// The optional fields arguments restrict validation to a subset of fields
// (field-level scoping). When omitted, the full default field set for the
// object's type is validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
