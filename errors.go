package jsontok

import "github.com/KimNorgaard/go-jsontok/errors"

// The error types returned by Tokenize, re-exported so callers need only
// import this package to inspect them with errors.As.
type (
	UnexpectedEndOfInputError = errors.UnexpectedEndOfInputError
	UnexpectedTokenError      = errors.UnexpectedTokenError
	RemainingTokensError      = errors.RemainingTokensError
	UnhandledStringTokenError = errors.UnhandledStringTokenError
	MaxDepthError             = errors.MaxDepthError
)
