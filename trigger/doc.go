// Package trigger connects jakecoffman/cp rigid bodies to splash water.
//
// A [Watcher] sits on the resting surface of a [splash.Body] like an edge
// trigger. After every space step it checks the tracked shapes, and a shape
// that starts overlapping the surface produces exactly one impact. The
// shape must leave the surface before it can splash again.
//
// A [Spawner] drops boxes into a space on a timer, for demos and soak tests.
package trigger
