package common

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns the square of half-size r centred on (x, y).
func RectAround(x, y, r float64) Rect {
	return Rect{X: x - r, Y: y - r, Width: 2 * r, Height: 2 * r}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
