// Package visual turns grid and search state into rendered frames.
//
// What:
//
//   - Frame: an immutable snapshot of a grid plus the progress of the run
//     exploring it (steps so far, current cell, outcome).
//   - Renderer: a presentation surface with an explicit lifecycle
//     (Init, RenderFrame, Shutdown). TextRenderer draws frames as styled
//     text on any io.Writer.
//   - Driver: pulls steps from a search.Run, renders a frame after each one
//     and waits a configurable delay in between.
//
// Pacing lives here and nowhere else: the search engine yields steps as fast
// as they are requested, and the Driver decides how long each one stays on
// screen. A zero delay renders every frame back to back.
//
// Usage:
//
//	r := visual.NewTextRenderer(os.Stdout, visual.WithClearScreen())
//	d := visual.NewDriver(r, visual.WithDelay(50*time.Millisecond))
//	res, err := d.Play(ctx, run)
//
// Errors:
//
//   - ErrNilRun if Play is given no run.
//   - Renderer errors are returned unchanged, joined with Shutdown errors.
//   - ctx.Err() if the context is done while pacing.
package visual
