package polyclean

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Direction is a convention for the direction in which polylines run. The
// numeric values are stable and may be stored.
type Direction int

const (
	RightToLeft Direction = iota + 1
	BottomToTop
	LeftToRight
	TopToBottom
)

var directionNames = [...]string{
	RightToLeft: "right-to-left",
	BottomToTop: "bottom-to-top",
	LeftToRight: "left-to-right",
	TopToBottom: "top-to-bottom",
}

func (d Direction) valid() bool {
	return d >= RightToLeft && d <= TopToBottom
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, errors.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// returned by String as well as the numbers 1 through 4.
func (d *Direction) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range directionNames {
		if i != 0 && (s == name || s == fmt.Sprint(i)) {
			*d = Direction(i)
			return nil
		}
	}
	return errors.Errorf("unknown direction %q", string(b))
}

// agrees reports whether a polyline running from start to end follows d.
// Start and end at the same coordinate agree with every direction.
func (d Direction) agrees(start, end Point) bool {
	switch d {
	case RightToLeft:
		return start.X >= end.X
	case LeftToRight:
		return start.X <= end.X
	case BottomToTop:
		return start.Y <= end.Y
	case TopToBottom:
		return start.Y >= end.Y
	default:
		panic(fmt.Sprintf("unhandled case %v", d))
	}
}

// SetDirection makes p run in direction d, comparing its first and last
// vertex along the axis of d. If they disagree, the polyline is reversed as
// per [Polyline.Reverse]. The second return value reports whether that
// happened.
//
// Closed polylines are treated the same way, which means that the former
// last vertex becomes the first. Applying the same direction twice never
// reverses the second time.
func SetDirection(p Polyline, d Direction) (Polyline, bool) {
	if p.IsDegenerate() || !d.valid() {
		return p.Clone(), false
	}
	start := p.Vertices[0].Point
	end := p.Vertices[len(p.Vertices)-1].Point
	if d.agrees(start, end) {
		return p.Clone(), false
	}
	return p.Reverse(), true
}
