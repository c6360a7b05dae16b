// Package pinboard is a small interactive 2D scene for [Ebitengine]: a
// fixed-aspect-ratio surface hosting draggable raster images.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a resizable window
// and game loop for you:
//
//	surface := pinboard.NewEbitenSurface()
//	scene := pinboard.NewScene(surface, []pinboard.ImagePlacement{
//		{Name: "cat", Source: pinboard.FileSource("cat.png"),
//			Size: pinboard.Size{Width: 200, Height: 186}, Position: pinboard.Point{X: 100, Y: 100}},
//	})
//	pinboard.Run(scene, pinboard.RunConfig{Title: "Pinboard", Width: 1280, Height: 720})
//
// # Scene
//
// A [Scene] keeps its [Surface] letterboxed to a fixed aspect ratio (16:9 by
// default) inside whatever viewport the host reports through [Scene.Resize].
// Images are painted in declaration order, so later images cover earlier ones.
//
// Pointer events reach the scene through [Scene.PointerDown],
// [Scene.PointerMove] and [Scene.PointerUp], or from mouse polling in
// [Scene.Update]. Every [DraggableImage] receives every event and decides on
// its own whether the event applies to it:
//
//   - a press inside the image's bounding box arms it;
//   - a move while armed or dragging moves it by the pointer delta, unless
//     that would push it off the surface, in which case it is released;
//   - a release always returns it to idle and commits its bounding box.
//
// Any change repaints the whole surface. By default overlapping images under
// a press all arm and move together; [WithExclusiveDrag] limits a press to
// the top-most image.
//
// # Hosts
//
// The window host lives in this package ([Run], [EbitenSurface]). The term
// subpackage hosts the same scene in a terminal using tcell, and the ecs
// subpackage forwards [InteractionEvent]s into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package pinboard
