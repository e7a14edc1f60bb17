package polyclean

import "github.com/pkg/errors"

// Invalid parameters are the only hard failure of the geometric operations.
// Everything else, such as degenerate input, is absorbed into the result.
var (
	// ErrParamOutOfRange is returned when a parameter lies outside
	// [0, NumSegments()] of the polyline it is used with. Parameters are
	// never clamped.
	ErrParamOutOfRange = errors.New("parameter out of range")

	// ErrDegenerate is returned when a polyline without segments is asked to
	// evaluate a parameter.
	ErrDegenerate = errors.New("degenerate polyline")

	// ErrMalformed is returned for input that cannot describe a polyline.
	ErrMalformed = errors.New("malformed polyline")
)

func errParam(p Param, n int) error {
	return errors.Wrapf(ErrParamOutOfRange, "param %g not in [0, %d]", float64(p), n)
}
