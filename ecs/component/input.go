package component

// Input stores per-frame movement intent for an entity, each axis in [-1, 1].
type Input struct {
	MoveX float64
	MoveY float64
}

var InputComponent = NewComponent[Input]()

// Mover converts input into velocity, in world units per second.
type Mover struct {
	Speed float64
}

var MoverComponent = NewComponent[Mover]()
