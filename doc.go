// Package splat is a small retained-mode 2D sprite renderer.
//
// An application builds a scene once out of canvases, layers, images, and
// instances, mutates it cheaply every frame, and calls [Context.Render] to
// draw and present it. Rendering goes through a [Backend]; [EbitenBackend]
// draws with [Ebitengine] into an [EbitenWindow], and [NullBackend] records
// frames for tests and headless runs.
//
// # Quick start
//
//	win := splat.NewEbitenWindow(splat.WindowConfig{Title: "demo", Width: 640, Height: 480})
//	ctx, err := splat.Prepare(splat.NewEbitenBackend(), win, 640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cv, _ := ctx.CreateCanvas()
//	layer, _ := ctx.CreateLayer(cv)
//
//	f, _ := os.Open("sprite.png")
//	surf, _ := splat.DecodeSurface(f)
//	img, _ := ctx.CreateImage(surf)
//	inst, _ := ctx.CreateInstance(img, layer, 0, 0, 0, 0, 1, 1, 0)
//
//	win.Run(func() error {
//		inst.SetPosition(x, y)
//		for {
//			ev, ok := win.PollEvent()
//			if !ok {
//				break
//			}
//			if ev.IsQuit() {
//				return splat.ErrStop
//			}
//		}
//		return ctx.Render(cv)
//	})
//
// # Object model
//
// A [Context] binds one backend to one window and fixes a logical viewport
// size; everything is drawn in viewport coordinates and scaled to the
// physical window on presentation.
//
// A [Canvas] owns layers. Layers draw back to front by [Layer.Z], then in
// creation order, and a new layer always starts on top.
//
// An [Image] is a GPU texture uploaded from a decoded [Surface]. Images are
// shared: any number of instances may reference one image, and the image
// refuses destruction ([ErrImageInUse]) while any do.
//
// An [Instance] places a texture region of an image at a position on a
// layer. Instances draw by [Instance.ZIndex], then in creation order.
// [FlagMirrorX] and [FlagMirrorY] flip the sampled region at draw time
// without changing the stored region.
//
// # Batching
//
// Render sorts the frame's quads and submits consecutive quads that share a
// texture and blend mode as a single draw call, so many instances of one
// image cost one call. Teardown order is instances, then images, then
// layers, then canvases, then [Context.Close].
//
// # Logging and debug mode
//
// The package logs through log/slog and is silent by default; install a
// logger with [SetLogger]. [Context.SetDebugMode] turns use of destroyed
// handles into panics and logs per-frame timings at debug level.
//
// # Tweens and atlases
//
// [TweenPosition], [TweenScale], [TweenRotation], and [TweenAlpha] animate
// instances via [gween]. [LoadAtlas] reads TexturePacker JSON so that many
// instances can share one atlas page.
//
// # ECS integration
//
// The splat/ecs module forwards window events into a [Donburi] world and
// syncs entity transforms onto instances.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package splat
