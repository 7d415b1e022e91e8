package maxtime

import "errors"

// ErrTooManyRides reports that exhaustive search was asked to enumerate 64
// or more rides, which would overflow the 64-bit subset counter. Callers
// can fall back to Dynamic, which has no such ceiling.
var ErrTooManyRides = errors.New("maxtime: exhaustive search supports at most 63 rides")

// ErrGridTooLarge reports that the DP grid would exceed MaxGridCells.
var ErrGridTooLarge = errors.New("maxtime: DP grid too large")
