package blurpass

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Params is a snapshot of the four parameters bound to the blur shader.
type Params struct {
	SourceImage  *ebiten.Image
	BlurStrength float64
	Direction    Vec2
	Resolution   Vec2
}

// BlurMaterial is the parameter set of one directional blur pass: the shader
// plus its source image, strength, direction and target resolution.
//
// The direction is fixed at construction. Source image, strength and
// resolution are expected to change every frame. The source image is
// borrowed; the material never allocates or deallocates it.
type BlurMaterial struct {
	direction  Vec2
	source     *ebiten.Image
	strength   float64
	resolution Vec2

	uniforms map[string]any
	dirF32   [2]float32 // persistent buffers, pre-stored in uniforms
	resF32   [2]float32
	shaderOp ebiten.DrawRectShaderOptions
}

// NewBlurMaterial creates a blur pass sampling along direction. Pass
// HorizontalDirection or VerticalDirection for a separable blur.
// Strength starts at 1 and resolution at (0, 0), which must be replaced
// before the first draw.
func NewBlurMaterial(direction Vec2) *BlurMaterial {
	m := &BlurMaterial{
		direction: direction,
		strength:  1,
		uniforms:  make(map[string]any, 3),
	}
	direction.toF32(&m.dirF32)
	m.uniforms[UniformDirection] = m.dirF32[:]
	m.uniforms[UniformResolution] = m.resF32[:]
	m.shaderOp.Blend = blurDrawState.Blend.EbitenBlend()
	return m
}

// NewDefaultBlurMaterial creates a blur pass with DefaultDirection.
func NewDefaultBlurMaterial() *BlurMaterial {
	return NewBlurMaterial(defaultDirection)
}

// SetSourceImage replaces the image read by the next Draw.
func (m *BlurMaterial) SetSourceImage(img *ebiten.Image) {
	m.source = img
}

// SourceImage returns the bound source image, or nil.
func (m *BlurMaterial) SourceImage() *ebiten.Image {
	return m.source
}

// SetBlurStrength sets the kernel spread in target pixels per step.
// Negative and NaN values clamp to 0 (no blur).
func (m *BlurMaterial) SetBlurStrength(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	m.strength = v
}

// BlurStrength returns the current kernel spread.
func (m *BlurMaterial) BlurStrength() float64 {
	return m.strength
}

// SetResolution sets the pixel size of the render target.
func (m *BlurMaterial) SetResolution(w, h float64) {
	m.resolution = Vec2{w, h}
}

// Resolution returns the render-target size last set with SetResolution.
func (m *BlurMaterial) Resolution() Vec2 {
	return m.resolution
}

// Direction returns a copy of the sampling direction.
func (m *BlurMaterial) Direction() Vec2 {
	return m.direction
}

// DrawState returns the fixed pipeline state: no blending, no depth write,
// no depth test. It is the same for every material.
func (m *BlurMaterial) DrawState() DrawState {
	return blurDrawState
}

// UniformNames returns the shader bind points in declaration order.
func (m *BlurMaterial) UniformNames() []string {
	return []string{UniformSourceImage, UniformBlurStrength, UniformDirection, UniformResolution}
}

// Params returns a snapshot of the bound parameters.
func (m *BlurMaterial) Params() Params {
	return Params{
		SourceImage:  m.source,
		BlurStrength: m.strength,
		Direction:    m.direction,
		Resolution:   m.resolution,
	}
}

// Validate reports whether the material can be drawn.
func (m *BlurMaterial) Validate() error {
	if m.source == nil {
		return ErrNoSourceImage
	}
	if !m.resolution.Positive() {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidResolution, m.resolution.X, m.resolution.Y)
	}
	if m.strength < 0 || math.IsInf(m.strength, 0) || math.IsNaN(m.strength) {
		return fmt.Errorf("%w: got %g", ErrInvalidStrength, m.strength)
	}
	return nil
}

// Draw runs the blur shader over the full source bounds into dst. The
// destination pixels under the source rectangle are replaced.
func (m *BlurMaterial) Draw(dst *ebiten.Image) error {
	if err := m.Validate(); err != nil {
		return err
	}
	shader := ensureBlurShader()
	m.resolution.toF32(&m.resF32)
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	m.uniforms[UniformBlurStrength] = float32(m.strength)
	bounds := m.source.Bounds()
	m.shaderOp.Images[0] = m.source
	m.shaderOp.Uniforms = m.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &m.shaderOp)
	// The source is borrowed; don't hold it past the draw.
	m.shaderOp.Images[0] = nil
	return nil
}
