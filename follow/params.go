package follow

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultSettleDelay       = 0.4
	DefaultLerp              = 0.02
	DefaultCenteredThreshold = 3.0
)

var ErrInvalidParams = errors.New("follow: invalid params")

// Params holds the tuning of a single camera. DeadZone is a half-extent.
type Params struct {
	DeadZone          r2.Vec
	AheadFactor       r3.Vec
	SettleDelay       float64
	Lerp              float64
	CenteredThreshold float64
}

func DefaultParams() Params {
	return Params{
		DeadZone:          r2.Vec{X: 30, Y: 15},
		AheadFactor:       r3.Vec{X: 1, Y: 1, Z: 1},
		SettleDelay:       DefaultSettleDelay,
		Lerp:              DefaultLerp,
		CenteredThreshold: DefaultCenteredThreshold,
	}
}

func (p Params) Validate() error {
	switch {
	case p.DeadZone.X < 0 || p.DeadZone.Y < 0:
		return fmt.Errorf("%w: dead zone %v has a negative extent", ErrInvalidParams, p.DeadZone)
	case p.SettleDelay < 0:
		return fmt.Errorf("%w: settle delay %v is negative", ErrInvalidParams, p.SettleDelay)
	case p.Lerp <= 0 || p.Lerp > 1:
		return fmt.Errorf("%w: lerp %v outside (0, 1]", ErrInvalidParams, p.Lerp)
	case p.CenteredThreshold < 0:
		return fmt.Errorf("%w: centered threshold %v is negative", ErrInvalidParams, p.CenteredThreshold)
	}
	return nil
}
