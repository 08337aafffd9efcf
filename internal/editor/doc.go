// Package editor implements the photo editor session: the current image, the
// image as it was loaded, and a linear history of whole-image snapshots.
//
// A Session exposes one method per user action (open, brighten, rotate, crop,
// undo, reset, save, ...). Each action runs to completion before returning and
// leaves the session exactly as it was when it fails. Pixel work is delegated
// to a Backend and every change is shown on a Surface.
//
// # History
//
// Every edit pushes the image it is about to replace onto the history, so
// Undo walks back one edit at a time until only the loaded image remains.
// Opening a file resets the history to that single entry. Two behaviors are
// kept on purpose:
//   - Reset restores the loaded image without touching the history.
//   - BeginCrop pushes a snapshot as soon as the crop is armed, even if no
//     selection is ever made.
//
// # Cropping
//
// Cropping is a pointer gesture: BeginCrop arms it, Press records the start
// corner, Drag outlines the selection, and Release crops to the box spanned by
// the start and release points, in either order. Coordinates are surface
// coordinates, which equal image coordinates because the image is drawn
// unscaled at the surface's top-left corner.
//
// A Session is not safe for concurrent use.
package editor
