// Package blurpass provides a separable Gaussian blur stage for [Ebitengine]
// post-processing pipelines.
//
// A [BlurMaterial] binds the blur Kage shader to four named parameters: the
// source image, the blur strength, the sampling direction and the resolution
// of the render target. Two materials, one built from [HorizontalDirection]
// and one from [VerticalDirection], run back to back to approximate a 2D
// Gaussian blur at a fraction of the per-pixel sample cost.
//
// # Quick start
//
// [SeparableBlur] owns both passes and the intermediate texture:
//
//	blur := blurpass.NewSeparableBlur(blurpass.Config{Strength: 2})
//	defer blur.Dispose()
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.scene.Clear()
//		// ... draw the frame into g.scene ...
//		if err := blur.Render(g.scene, screen); err != nil {
//			log.Print(err)
//		}
//	}
//
// For full control, drive the materials yourself. Update the resolution and
// source image every frame, horizontal pass first:
//
//	hp := blurpass.NewBlurMaterial(blurpass.HorizontalDirection())
//	vp := blurpass.NewBlurMaterial(blurpass.VerticalDirection())
//
//	hp.SetResolution(640, 480)
//	hp.SetSourceImage(scene)
//	_ = hp.Draw(tmp)
//	vp.SetResolution(640, 480)
//	vp.SetSourceImage(tmp)
//	_ = vp.Draw(screen)
//
// # Draw state
//
// Every blur pass draws with blending disabled and no depth interaction
// (see [BlurMaterial.DrawState]). The destination is overwritten, not
// composited.
//
// # Threading
//
// Like Ebitengine's draw path, the package is meant to be used from the
// rendering goroutine only. The direction presets are read-only and safe to
// share.
//
// [Ebitengine]: https://ebitengine.org
package blurpass
