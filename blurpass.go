package blurpass

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for blur directions and render-target resolutions.
type Vec2 struct {
	X, Y float64
}

// IsAxisAligned reports whether exactly one component is non-zero.
func (v Vec2) IsAxisAligned() bool {
	return (v.X != 0) != (v.Y != 0)
}

// Positive reports whether both components are finite and greater than zero.
func (v Vec2) Positive() bool {
	return v.X > 0 && v.Y > 0 && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// toF32 writes v into dst without allocating.
func (v Vec2) toF32(dst *[2]float32) {
	dst[0] = float32(v.X)
	dst[1] = float32(v.Y)
}

// Direction presets. Unexported so the shared values cannot be reassigned;
// the accessors hand out copies.
var (
	horizontalDirection = Vec2{1, 0}
	verticalDirection   = Vec2{0, 1}
	defaultDirection    = Vec2{0.5, 0.5}
)

// HorizontalDirection returns the (1, 0) direction used by the first pass of
// a separable blur.
func HorizontalDirection() Vec2 { return horizontalDirection }

// VerticalDirection returns the (0, 1) direction used by the second pass of
// a separable blur.
func VerticalDirection() Vec2 { return verticalDirection }

// DefaultDirection returns the diagonal (0.5, 0.5) direction a material gets
// when built with NewDefaultBlurMaterial.
func DefaultDirection() Vec2 { return defaultDirection }

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// DrawState is the fixed pipeline state of a blur pass. Ebitengine has no
// depth buffer, so DepthWrite and DepthTest only record the contract: a
// full-screen blur quad never reads or writes depth.
type DrawState struct {
	Blend      BlendMode
	DepthWrite bool
	DepthTest  bool
}

// blurDrawState is shared by every BlurMaterial and never changes.
var blurDrawState = DrawState{Blend: BlendNone}
