package blurpass

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StrengthTarget is anything with an animatable blur strength.
// Both BlurMaterial and SeparableBlur implement it.
type StrengthTarget interface {
	BlurStrength() float64
	SetBlurStrength(v float64)
}

// StrengthTween animates the blur strength of a target. Call Update(dt) each
// frame; there is no global animation manager.
type StrengthTween struct {
	tween  *gween.Tween
	target StrengthTarget
	Done   bool
}

// TweenStrength creates a StrengthTween that moves target's strength from
// its current value to `to` over duration seconds using the easing function.
func TweenStrength(target StrengthTarget, to float64, duration float32, fn ease.TweenFunc) *StrengthTween {
	return &StrengthTween{
		tween:  gween.New(float32(target.BlurStrength()), float32(to), duration, fn),
		target: target,
	}
}

// Update advances the tween by dt seconds and writes the value to the target.
func (t *StrengthTween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.target.SetBlurStrength(float64(val))
	t.Done = finished
}

// Reset rewinds the tween to its start value.
func (t *StrengthTween) Reset() {
	t.tween.Reset()
	t.Done = false
}
