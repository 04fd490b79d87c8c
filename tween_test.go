package blurpass

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenStrengthMaterial(t *testing.T) {
	m := NewDefaultBlurMaterial()
	tw := TweenStrength(m, 3, 1, ease.Linear)

	tw.Update(0.5)
	if math.Abs(m.BlurStrength()-2) > 1e-5 {
		t.Errorf("strength at half time = %g, want 2", m.BlurStrength())
	}
	if tw.Done {
		t.Error("tween should not be done at half time")
	}

	tw.Update(0.6)
	if m.BlurStrength() != 3 {
		t.Errorf("strength at end = %g, want 3", m.BlurStrength())
	}
	if !tw.Done {
		t.Error("tween should be done")
	}

	m.SetBlurStrength(9)
	tw.Update(1)
	if m.BlurStrength() != 9 {
		t.Error("finished tween should not write to the target")
	}
}

func TestTweenStrengthSeparable(t *testing.T) {
	b := NewSeparableBlur(Config{Strength: 4})
	tw := TweenStrength(b, 0, 2, ease.Linear)
	tw.Update(1)
	if math.Abs(b.Horizontal().BlurStrength()-2) > 1e-5 || math.Abs(b.Vertical().BlurStrength()-2) > 1e-5 {
		t.Errorf("pass strengths = %g/%g, want 2/2",
			b.Horizontal().BlurStrength(), b.Vertical().BlurStrength())
	}
}

func TestTweenStrengthReset(t *testing.T) {
	m := NewDefaultBlurMaterial()
	tw := TweenStrength(m, 5, 1, ease.Linear)
	tw.Update(2)
	if !tw.Done {
		t.Fatal("tween should be done")
	}
	tw.Reset()
	if tw.Done {
		t.Error("Reset should clear Done")
	}
	tw.Update(0)
	if math.Abs(m.BlurStrength()-1) > 1e-5 {
		t.Errorf("strength after Reset = %g, want 1", m.BlurStrength())
	}
}
