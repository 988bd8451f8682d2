// Package dataquery declares the single-operation facade the path parser
// consults while completing or validating a list-key suffix (§4.2).
package dataquery

import (
	"context"

	"github.com/danos/ncli/pkg/path"
)

// Facade enumerates existing instances of a list, for list-key
// completion and validation. p always denotes a list with no keys
// attached (a schema-shaped list segment at the tail). Implementations
// must tolerate being called with a partial/incomplete path context and
// may return an empty slice rather than erroring.
type Facade interface {
	ListInstances(ctx context.Context, p path.Path) ([]path.KeyInstance, error)
}
