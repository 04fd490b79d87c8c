package blurpass

import "github.com/hajimehoshi/ebiten/v2"

// Uniform bind points of the blur shader. SourceImage is bound to image slot
// 0; Kage addresses textures by slot, so it never appears in the uniform map.
const (
	UniformSourceImage  = "SourceImage"
	UniformBlurStrength = "BlurStrength"
	UniformDirection    = "Direction"
	UniformResolution   = "Resolution"
)

// blurShaderSrc is a 9-tap Gaussian collapsed to 5 bilinear fetches. The
// step is computed in normalized target coordinates and scaled to source
// pixels, so Resolution must be non-zero.
// Ebitengine uses premultiplied alpha; a linear blur of premultiplied texels
// needs no un-premultiply.
const blurShaderSrc = `//kage:unit pixels
package main

var BlurStrength float
var Direction vec2
var Resolution vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	step := Direction * BlurStrength / Resolution * imageSrc0Size()
	off1 := step * 1.3846153846
	off2 := step * 3.2307692308
	c := imageSrc0At(src) * 0.2270270270
	c += imageSrc0At(src + off1) * 0.3162162162
	c += imageSrc0At(src - off1) * 0.3162162162
	c += imageSrc0At(src + off2) * 0.0702702703
	c += imageSrc0At(src - off2) * 0.0702702703
	return c
}
`

// kernelReach is the farthest sample offset of blurShaderSrc in steps.
const kernelReach = 3.2307692308

// Lazy compilation without sync.Once: drawing happens on the render thread only.
var blurShader *ebiten.Shader

func ensureBlurShader() *ebiten.Shader {
	if blurShader == nil {
		s, err := ebiten.NewShader([]byte(blurShaderSrc))
		if err != nil {
			panic("blurpass: failed to compile blur shader: " + err.Error())
		}
		blurShader = s
	}
	return blurShader
}
