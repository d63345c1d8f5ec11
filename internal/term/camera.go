// Package term is the terminal front end: a camera that turns key presses
// into pan/zoom state, and a driver that runs the cooperative frame loop
// around pkg/world and pkg/braille.
package term

import (
	"github.com/flier/hashlife/pkg/braille"
	"github.com/flier/hashlife/pkg/world"
)

// Camera holds the pan offset and zoom level that decide what part of the
// world Draw shows, and at what scale. X and Y are world offsets (pixels
// at scale 0); Draw divides them by 2^Scale to get the screen offset, the
// same split camera.rs's draw keeps between "true position" and "screen
// pixel offset".
type Camera struct {
	X, Y  int64
	Scale uint
}

// step is how far one key press pans the camera: lateral movement is
// always one screen pixel, which is 2^Scale world cells.
func (c *Camera) step() int64 { return int64(1) << c.Scale }

func (c *Camera) Left()  { c.X += c.step() }
func (c *Camera) Right() { c.X -= c.step() }
func (c *Camera) Up()    { c.Y += c.step() }
func (c *Camera) Down()  { c.Y -= c.step() }

// ZoomIn halves the number of world cells per screen pixel, saturating at
// scale 0 (1 cell per pixel).
func (c *Camera) ZoomIn() {
	if c.Scale > 0 {
		c.Scale--
	}
}

// ZoomOut doubles the number of world cells per screen pixel.
func (c *Camera) ZoomOut() { c.Scale++ }

// Reset centers the camera on the origin at scale 0.
func (c *Camera) Reset() { c.X, c.Y, c.Scale = 0, 0, 0 }

// Draw clears fb and renders w into it at the camera's current pan/zoom.
func (c *Camera) Draw(fb *braille.Framebuffer, w *world.World) {
	fb.Reset()
	w.Draw(fb, int(c.X>>c.Scale), int(c.Y>>c.Scale), c.Scale)
}
