package blurpass

import (
	"image"
	"math/bits"

	"github.com/hajimehoshi/ebiten/v2"
)

// renderTexturePool holds the intermediate targets between blur passes.
// Sizes are bucketed by power of two so a window resize within the same
// bucket reuses the textures from the previous frame.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
}

// bucketOf returns the bucket key for a texture of (w, h) pixels. Both sides
// must already be powers of two.
func bucketOf(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire hands out an empty intermediate target covering (w, h).
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	tw, th := nextPowerOfTwo(w), nextPowerOfTwo(h)
	key := bucketOf(tw, th)

	if idle := p.buckets[key]; len(idle) > 0 {
		tex := idle[len(idle)-1]
		p.buckets[key] = idle[:len(idle)-1]
		tex.Clear()
		return tex
	}
	return ebiten.NewImageWithOptions(image.Rect(0, 0, tw, th), &ebiten.NewImageOptions{Unmanaged: true})
}

// Release puts a target back once both passes that touch it are done.
// Clearing waits until it is handed out again.
func (p *renderTexturePool) Release(tex *ebiten.Image) {
	if tex == nil {
		return
	}
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	b := tex.Bounds()
	key := bucketOf(b.Dx(), b.Dy())
	p.buckets[key] = append(p.buckets[key], tex)
}

// Len returns the number of idle images held by the pool.
func (p *renderTexturePool) Len() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// Dispose deallocates every idle image.
func (p *renderTexturePool) Dispose() {
	for key, stack := range p.buckets {
		for _, img := range stack {
			img.Deallocate()
		}
		delete(p.buckets, key)
	}
}

// nextPowerOfTwo rounds a texture side up to a bucket size.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// region returns the top-left (w, h) sub-image of a pooled texture.
// DrawRectShader wants sources sized like the draw rectangle.
func region(img *ebiten.Image, w, h int) *ebiten.Image {
	return img.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
}
