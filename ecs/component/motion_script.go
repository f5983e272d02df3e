package component

// MotionScript drives an entity's position from a tengo script exposing
// pos(t, dt). Elapsed is the script clock in seconds.
type MotionScript struct {
	Path    string
	Elapsed float64
}

var MotionScriptComponent = NewComponent[MotionScript]()
