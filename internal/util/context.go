package util

import "context"

// ContextAware is implemented by everything that carries the context of the
// running command.
type ContextAware interface {
	Context() context.Context
}
