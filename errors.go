package primesieve

import "errors"

// ErrInvalidPrevPrime is returned by TryPrevPrime when x <= 2, where
// no prime strictly less than x exists.
var ErrInvalidPrevPrime = errors.New("primesieve: no prime strictly less than x for x <= 2")
