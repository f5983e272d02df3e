package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cameraman/ecs"
	"github.com/milk9111/cameraman/ecs/component"
	"github.com/milk9111/cameraman/prefabs"
)

const motionDispatchScript = `
__out = pos(__t, __dt)
`

// MotionScript is a compiled tengo program exposing pos(t, dt) -> {x, y}.
type MotionScript struct {
	path     string
	compiled *tengo.Compiled
}

// CompileMotionScript compiles src; path is only used in errors. A script
// without a pos function fails to compile.
func CompileMotionScript(path string, src []byte) (*MotionScript, error) {
	full := string(src) + "\n" + motionDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__t", 0.0)
	_ = script.Add("__dt", 0.0)
	_ = script.Add("__out", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("motion script %s: compile: %w", path, err)
	}
	return &MotionScript{path: path, compiled: compiled}, nil
}

// LoadMotionScript reads a script through the prefab loader and compiles it.
func LoadMotionScript(path string) (*MotionScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("motion script %s: load: %w", path, err)
	}
	return CompileMotionScript(path, src)
}

// Position evaluates pos(t, dt).
func (m *MotionScript) Position(t, dt float64) (float64, float64, error) {
	if m == nil || m.compiled == nil {
		return 0, 0, fmt.Errorf("nil motion script")
	}
	if err := m.compiled.Set("__t", t); err != nil {
		return 0, 0, err
	}
	if err := m.compiled.Set("__dt", dt); err != nil {
		return 0, 0, err
	}
	if err := m.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("motion script %s: run: %w", m.path, err)
	}
	out := m.compiled.Get("__out").Map()
	if out == nil {
		return 0, 0, fmt.Errorf("motion script %s: pos must return a map with x and y", m.path)
	}
	x, okX := toFloat(out["x"])
	y, okY := toFloat(out["y"])
	if !okX || !okY {
		return 0, 0, fmt.Errorf("motion script %s: pos returned non-numeric x/y", m.path)
	}
	return x, y, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// MotionScriptSystem moves entities carrying a MotionScript component along
// their scripted path. Scripts are compiled once per path.
type MotionScriptSystem struct {
	cache  map[string]*MotionScript
	failed map[string]bool
}

func NewMotionScriptSystem() *MotionScriptSystem {
	return &MotionScriptSystem{
		cache:  map[string]*MotionScript{},
		failed: map[string]bool{},
	}
}

// Invalidate drops a cached script so the next frame recompiles it.
func (s *MotionScriptSystem) Invalidate(path string) {
	for key := range s.cache {
		if strings.HasSuffix(path, strings.TrimPrefix(key, "scripts/")) {
			delete(s.cache, key)
		}
	}
	for key := range s.failed {
		if strings.HasSuffix(path, strings.TrimPrefix(key, "scripts/")) {
			delete(s.failed, key)
		}
	}
}

func (s *MotionScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.MotionScriptComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ms *component.MotionScript, t *component.Transform) {
		script, ok := s.script(ms.Path)
		if !ok {
			return
		}
		if dt > 0 {
			ms.Elapsed += dt
		}
		x, y, err := script.Position(ms.Elapsed, dt)
		if err != nil {
			log.Printf("motion: entity=%s %v", e, err)
			s.failed[ms.Path] = true
			delete(s.cache, ms.Path)
			return
		}
		t.X = x
		t.Y = y
	})
}

func (s *MotionScriptSystem) script(path string) (*MotionScript, bool) {
	if m, ok := s.cache[path]; ok {
		return m, true
	}
	if s.failed[path] {
		return nil, false
	}
	m, err := LoadMotionScript(path)
	if err != nil {
		log.Printf("motion: %v", err)
		s.failed[path] = true
		return nil, false
	}
	s.cache[path] = m
	return m, true
}
