package jsontok

import "fmt"

// Option configures a Tokenizer.
type Option func(*options) error

type options struct {
	maxDepth int
}

// MaxDepth returns an Option that limits how deeply values may nest. This
// helps prevent stack exhaustion when tokenizing untrusted, highly nested
// input. By default nesting is unlimited.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jsontok: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
