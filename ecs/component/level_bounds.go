package component

// LevelBounds stores the world-space rectangle enclosing the play area.
type LevelBounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b LevelBounds) Width() float64  { return b.MaxX - b.MinX }
func (b LevelBounds) Height() float64 { return b.MaxY - b.MinY }

var LevelBoundsComponent = NewComponent[LevelBounds]()
