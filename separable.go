package blurpass

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Filter is the interface for visual effects applied to a rendered image.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to accommodate
	// the effect. Zero means no padding.
	Padding() int
}

// Config controls a SeparableBlur.
type Config struct {
	// Strength is the initial blur strength of both passes. Zero defaults to 1;
	// call SetBlurStrength(0) after construction for a pass-through blur.
	// Negative values clamp to 0.
	Strength float64
	// Iterations is the number of horizontal+vertical pass pairs per Render.
	// Each extra pair widens the blur. Zero defaults to 1.
	Iterations int
	// Debug logs per-render pass stats at debug level.
	Debug bool
}

// PassStats reports the work done by the last Render.
type PassStats struct {
	Passes   int
	Width    int
	Height   int
	Duration time.Duration
}

// SeparableBlur runs a two-pass Gaussian blur: a horizontal pass reading the
// source, then a vertical pass reading the horizontal result. It owns one
// BlurMaterial per axis and the intermediate textures between them.
type SeparableBlur struct {
	horizontal *BlurMaterial
	vertical   *BlurMaterial
	iterations int
	debug      bool
	resized    bool // resolution pinned by Resize
	pool       renderTexturePool
	stats      PassStats
	imgOp      ebiten.DrawImageOptions
}

var _ Filter = (*SeparableBlur)(nil)

// NewSeparableBlur creates a two-pass blur from cfg.
func NewSeparableBlur(cfg Config) *SeparableBlur {
	if cfg.Strength == 0 {
		cfg.Strength = 1
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 1
	}
	b := &SeparableBlur{
		horizontal: NewBlurMaterial(horizontalDirection),
		vertical:   NewBlurMaterial(verticalDirection),
		iterations: cfg.Iterations,
		debug:      cfg.Debug,
	}
	b.SetBlurStrength(cfg.Strength)
	return b
}

// Horizontal returns the first-pass material.
func (b *SeparableBlur) Horizontal() *BlurMaterial { return b.horizontal }

// Vertical returns the second-pass material.
func (b *SeparableBlur) Vertical() *BlurMaterial { return b.vertical }

// Iterations returns the number of pass pairs per Render.
func (b *SeparableBlur) Iterations() int { return b.iterations }

// SetBlurStrength sets the strength of both passes.
func (b *SeparableBlur) SetBlurStrength(v float64) {
	b.horizontal.SetBlurStrength(v)
	b.vertical.SetBlurStrength(v)
}

// BlurStrength returns the strength of the horizontal pass. Both passes share
// it unless a material was changed directly.
func (b *SeparableBlur) BlurStrength() float64 {
	return b.horizontal.BlurStrength()
}

// Resize pins the target resolution of both passes. Until Resize is called,
// Render uses the source size; afterwards the pinned resolution is kept.
func (b *SeparableBlur) Resize(w, h int) {
	b.resized = true
	b.setResolution(w, h)
}

func (b *SeparableBlur) setResolution(w, h int) {
	b.horizontal.SetResolution(float64(w), float64(h))
	b.vertical.SetResolution(float64(w), float64(h))
}

// Stats returns the stats of the last successful Render.
func (b *SeparableBlur) Stats() PassStats { return b.stats }

// Render blurs src into dst. Unless pinned with Resize, the resolution of
// both passes follows the source size. Iterations ping-pong between two
// pooled textures; the final vertical pass writes dst directly. Neither
// material keeps a source image after Render returns.
func (b *SeparableBlur) Render(src, dst *ebiten.Image) error {
	if src == nil {
		return ErrNoSourceImage
	}
	start := time.Now()
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if !b.resized {
		b.setResolution(w, h)
	}
	defer b.releaseSources()

	texA := b.pool.Acquire(w, h)
	defer b.pool.Release(texA)
	tmp := region(texA, w, h)

	var tmpB *ebiten.Image
	if b.iterations > 1 {
		texB := b.pool.Acquire(w, h)
		defer b.pool.Release(texB)
		tmpB = region(texB, w, h)
	}

	current := src
	passes := 0
	for i := 0; i < b.iterations; i++ {
		b.horizontal.SetSourceImage(current)
		if err := b.horizontal.Draw(tmp); err != nil {
			return err
		}
		passes++

		target := dst
		if i < b.iterations-1 {
			target = tmpB
		}
		b.vertical.SetSourceImage(tmp)
		if err := b.vertical.Draw(target); err != nil {
			return err
		}
		passes++
		current = target
	}

	b.stats = PassStats{Passes: passes, Width: w, Height: h, Duration: time.Since(start)}
	if b.debug {
		logger.WithFields(logrus.Fields{
			"passes":   b.stats.Passes,
			"size":     [2]int{w, h},
			"strength": b.BlurStrength(),
			"duration": b.stats.Duration,
		}).Debug("blurpass: render")
	}
	return nil
}

func (b *SeparableBlur) releaseSources() {
	b.horizontal.SetSourceImage(nil)
	b.vertical.SetSourceImage(nil)
}

// Apply implements Filter. When the blur cannot run, src is copied into dst
// unchanged and the error is logged.
func (b *SeparableBlur) Apply(src, dst *ebiten.Image) {
	if err := b.Render(src, dst); err != nil {
		logger.WithError(err).Warn("blurpass: blur skipped")
		if src == nil {
			return
		}
		b.imgOp.GeoM.Reset()
		b.imgOp.ColorScale.Reset()
		b.imgOp.Blend = ebiten.BlendCopy
		dst.DrawImage(src, &b.imgOp)
	}
}

// Padding returns the kernel reach in pixels; the offscreen buffer is
// expanded by this amount to avoid clipping the blurred edges.
func (b *SeparableBlur) Padding() int {
	reach := kernelReach * math.Max(b.horizontal.BlurStrength(), b.vertical.BlurStrength()) * float64(b.iterations)
	if math.IsInf(reach, 0) || math.IsNaN(reach) {
		return 0
	}
	return int(math.Ceil(reach))
}

// Dispose frees the intermediate textures. The blur stays usable; textures
// are reallocated on the next Render.
func (b *SeparableBlur) Dispose() {
	b.pool.Dispose()
}
