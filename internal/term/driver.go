package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	rawterm "golang.org/x/term"

	"github.com/flier/hashlife/pkg/braille"
	"github.com/flier/hashlife/pkg/world"
	"github.com/flier/hashlife/pkg/world/library"
)

// Driver runs the terminal front end: a single-threaded, cooperative frame
// loop that steps the world, draws it through the camera, and dispatches
// key presses, standing in for crossterm/sdl2's event pump in io.rs and
// main.rs. A second goroutine only copies raw bytes from stdin onto a
// channel — it never touches World, Camera, or FB — so all state mutation
// still happens on the one goroutine running the select loop below.
type Driver struct {
	World  *world.World
	Camera Camera
	FB     *braille.Framebuffer

	In  *os.File
	Out io.Writer
	Log *slog.Logger

	// FramePeriod is how often the world steps and redraws.
	FramePeriod time.Duration

	cols, rows int
	picker     *picker
}

// NewDriver creates a Driver with a cols x rows Braille viewport over w.
func NewDriver(w *world.World, cols, rows int) *Driver {
	return &Driver{
		World:       w,
		FB:          braille.New(cols, rows),
		In:          os.Stdin,
		Out:         os.Stdout,
		Log:         slog.Default(),
		FramePeriod: time.Second / 15,
		cols:        cols,
		rows:        rows,
	}
}

// Run puts the terminal in raw mode and runs the frame loop until ctx is
// canceled or the user quits (q / Ctrl-C). Raw mode is always restored
// before Run returns, including when the loop panics.
func (d *Driver) Run(ctx context.Context) (err error) {
	fd := int(d.In.Fd())

	if !rawterm.IsTerminal(fd) {
		return errors.New("term: stdin is not a terminal")
	}

	old, err := rawterm.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("term: enter raw mode: %w", err)
	}
	defer func() {
		if rErr := rawterm.Restore(fd, old); rErr != nil && err == nil {
			err = fmt.Errorf("term: restore terminal: %w", rErr)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			d.Log.Error("recovered panic in frame loop", "panic", r)
			err = fmt.Errorf("term: %v", r)
		}
	}()

	keys := d.readKeys(ctx)

	ticker := time.NewTicker(d.FramePeriod)
	defer ticker.Stop()

	d.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case b, ok := <-keys:
			if !ok {
				return nil
			}
			if d.handleKey(b) {
				return nil
			}
			d.render()

		case <-ticker.C:
			if cols, rows, sErr := rawterm.GetSize(fd); sErr == nil && (cols != d.cols || rows != d.rows) {
				d.cols, d.rows = cols, rows
				d.FB.Resize(cols, rows)
				d.Log.Debug("resized viewport", "cols", cols, "rows", rows)
			}

			d.World.Step()
			d.render()
		}
	}
}

// readKeys copies raw bytes from stdin onto a channel, closing it on read
// error or ctx cancellation. This is the only concurrency in the driver.
func (d *Driver) readKeys(ctx context.Context) <-chan byte {
	out := make(chan byte)

	go func() {
		defer close(out)

		buf := make([]byte, 1)
		for {
			n, err := d.In.Read(buf)
			if err != nil || n == 0 {
				return
			}

			select {
			case out <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// handleKey dispatches a single raw byte read from stdin. It reports
// whether the driver should quit.
func (d *Driver) handleKey(b byte) bool {
	if d.picker != nil {
		return d.handlePickerKey(b)
	}

	switch b {
	case 'q', 0x03: // Ctrl-C
		return true
	case 'h':
		d.Camera.Left()
	case 'l':
		d.Camera.Right()
	case 'k':
		d.Camera.Up()
	case 'j':
		d.Camera.Down()
	case 'J':
		d.Camera.ZoomIn()
	case 'K':
		d.Camera.ZoomOut()
	case '0':
		d.Camera.Reset()
	case 'p':
		d.picker = newPicker()
	}

	return false
}

// picker is the state of the `p` pattern prompt: a typed prefix, the
// builtin names it currently matches, and which one Tab has landed on.
type picker struct {
	prefix string
	names  []string
	idx    int
}

func newPicker() *picker {
	p := &picker{}
	p.refresh()
	return p
}

func (p *picker) refresh() {
	p.names = library.CompleteFromPrefix(p.prefix)
	p.idx = 0
}

func (p *picker) next() {
	if len(p.names) == 0 {
		return
	}
	p.idx = (p.idx + 1) % len(p.names)
}

func (p *picker) current() string {
	if p.idx >= len(p.names) {
		return ""
	}
	return p.names[p.idx]
}

func (d *Driver) handlePickerKey(b byte) bool {
	switch b {
	case 0x1b: // Esc
		d.picker = nil
	case '\t':
		d.picker.next()
	case '\r', '\n':
		name := d.picker.current()
		d.picker = nil
		if name != "" {
			d.loadBuiltin(name)
		}
	case 0x7f, 0x08: // Backspace
		if n := len(d.picker.prefix); n > 0 {
			d.picker.prefix = d.picker.prefix[:n-1]
			d.picker.refresh()
		}
	default:
		if b >= 0x20 && b < 0x7f {
			d.picker.prefix += string(b)
			d.picker.refresh()
		}
	}

	return false
}

// errNoDeclaredName marks a builtin pattern whose RLE source carries no #N
// comment, so loadBuiltin falls back to the library key for its log line.
var errNoDeclaredName = errors.New("term: rle file declares no #N name")

func (d *Driver) loadBuiltin(name string) {
	src, ok := library.Lookup(name)
	if !ok {
		d.Log.Warn("unknown builtin pattern", "name", name)
		return
	}

	file, err := d.World.LoadRLE(src)
	if err != nil {
		d.Log.Error("failed to load builtin pattern", "name", name, "error", err)
		return
	}

	d.Camera.Reset()

	declared := file.Name(src).OkOr(errNoDeclaredName).UnwrapOr(name)
	d.Log.Info("loaded builtin pattern", "name", name, "declared_name", declared)
}

// render draws the current frame and writes it to Out, homing the cursor
// and clearing the screen first.
func (d *Driver) render() {
	d.Camera.Draw(d.FB, d.World)
	fmt.Fprint(d.Out, "\x1b[H\x1b[2J", d.FB.Render())
}
