package stroke

// Cap selects how an unclosed subpath's two open ends are capped.
type Cap int

const (
	// ButtCap emits nothing; the stroke ends exactly at the path's endpoint.
	ButtCap Cap = iota
	// SquareCap extends the body by halfWidth along the line direction.
	SquareCap
	// RoundCap emits a half-disc fill.
	RoundCap
)

func (c Cap) String() string {
	switch c {
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "butt"
	}
}

// Join selects how two consecutive segments are connected at a corner.
type Join int

const (
	// MiterJoin extends both edges to their intersection, falling back to
	// BevelJoin when the miter limit is exceeded.
	MiterJoin Join = iota
	// BevelJoin connects the two outer corners with a single triangle.
	BevelJoin
	// RoundJoin fills the outer corner with a circular wedge.
	RoundJoin
)

func (j Join) String() string {
	switch j {
	case BevelJoin:
		return "bevel"
	case RoundJoin:
		return "round"
	default:
		return "miter"
	}
}

// Options configures Build. The zero value is not meaningful on its own;
// use DefaultOptions or rely on Build applying its defaults.
type Options struct {
	// Width is the full stroke width; the builder works with halfWidth =
	// Width/2. Must be positive; non-positive values fall back to 1.
	Width float64
	// MiterLimit bounds how far a MiterJoin may extend before falling
	// back to BevelJoin. Must be positive; non-positive values fall back
	// to 10.
	MiterLimit float64
	Cap        Cap
	Join       Join
}

// DefaultOptions returns the recognized stroke-option defaults: width 1,
// miter limit 10, butt caps, miter joins.
func DefaultOptions() Options {
	return Options{Width: 1, MiterLimit: 10, Cap: ButtCap, Join: MiterJoin}
}

// withDefaults returns o with non-positive Width/MiterLimit replaced by
// their defaults.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1
	}
	if o.MiterLimit <= 0 {
		o.MiterLimit = 10
	}
	return o
}
