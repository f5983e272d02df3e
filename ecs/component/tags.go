package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// TargetTag marks an entity a camera is allowed to follow.
type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]()

type SceneryTag struct{}

var SceneryTagComponent = NewComponent[SceneryTag]()
