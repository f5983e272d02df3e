package system

import (
	"log"

	"github.com/milk9111/cameraman/ecs"
)

// CameraEventLogSystem counts camera follow transitions and optionally logs
// them. It must run after CameraSystem in the same update, because the event
// queue is cleared at the end of every frame.
type CameraEventLogSystem struct {
	Verbose bool
	counts  map[ecs.CameraEventKind]int
}

func NewCameraEventLogSystem(verbose bool) *CameraEventLogSystem {
	return &CameraEventLogSystem{Verbose: verbose, counts: map[ecs.CameraEventKind]int{}}
}

func (s *CameraEventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Peek() {
		if evt.Type != ecs.CameraEventType {
			continue
		}
		ce, ok := evt.Data.(ecs.CameraEvent)
		if !ok {
			continue
		}
		s.counts[ce.Kind]++
		if s.Verbose {
			log.Printf("camera: entity=%s %s frame=%d", ce.Camera, ce.Kind, w.Frame())
		}
	}
}

// Count returns how many events of kind have been seen.
func (s *CameraEventLogSystem) Count(kind ecs.CameraEventKind) int {
	return s.counts[kind]
}
