package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIdenticalTokens is returned when the two token addresses supplied for
	// a pair are the same address.
	ErrIdenticalTokens = errors.New("identical token addresses")

	// ErrUnsupportedNetwork is returned when a protocol has no known factory
	// on the requested network. Callers should treat it as recoverable and
	// skip the protocol.
	ErrUnsupportedNetwork = errors.New("protocol has no factory on this network")

	// ErrMalformedResponse is returned when a batched call result decodes as
	// neither the expected outputs nor a revert payload.
	ErrMalformedResponse = errors.New("malformed call response")

	// ErrTransport is returned when the batched round trip itself fails.
	// Cached pair state is left untouched and the call is safe to retry.
	ErrTransport = errors.New("transport failure")
)
