package rate

import "errors"

// ErrWaitTimeout is returned by Acquire when the wait budget is exhausted
// before an admission becomes available.
var ErrWaitTimeout = errors.New("rate: wait budget exhausted before admission")

// Limiter controls how fast callers may start operations against the
// dotdigital API.
//
// The Limiter interface provides admission control to stay under
// dotdigital's own API rate limits. Implementations can use different
// strategies such as:
//   - Fixed window counting
//   - Sliding window counting
//   - Token bucket algorithm
//
// Acquire is called before each rate-limited operation and may block the
// caller until an admission is available. How long it is willing to block
// is an implementation concern; once the implementation gives up waiting
// it returns ErrWaitTimeout and the caller must not start the operation.
type Limiter interface {
	// Acquire blocks until the caller may start one operation. It returns
	// nil when admitted, or ErrWaitTimeout when the implementation's wait
	// budget was exhausted first.
	Acquire() error
}
