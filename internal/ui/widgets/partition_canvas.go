package widgets

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/rectcut/internal/drag"
	"github.com/piwi3910/rectcut/internal/input"
	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/render"
	"github.com/piwi3910/rectcut/internal/session"
)

// PartitionCanvas shows a session's frame scaled up by an integer factor and
// feeds pointer events back to the session in partition space.
type PartitionCanvas struct {
	widget.BaseWidget

	session  session.Session
	engine   *input.Engine
	viewport model.Viewport
	tracker  input.Tracker
	lastPos  model.Point

	// OnChanged runs after every dispatched event.
	OnChanged func()
	// OnQuit runs once the session asks to stop.
	OnQuit func()
}

var (
	_ desktop.Mouseable  = (*PartitionCanvas)(nil)
	_ desktop.Hoverable  = (*PartitionCanvas)(nil)
	_ desktop.Cursorable = (*PartitionCanvas)(nil)
	_ fyne.Draggable     = (*PartitionCanvas)(nil)
)

func NewPartitionCanvas(s session.Session, viewport model.Viewport) *PartitionCanvas {
	pc := &PartitionCanvas{viewport: viewport}
	pc.bind(s)
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PartitionCanvas) bind(s session.Session) {
	pc.session = s
	pc.engine = input.NewEngine()
	pc.engine.SetHandlers(s.Handlers(pc.engine.Quit))
	pc.tracker.Reset()
}

// SetSession replaces the session, for example after a mode switch.
func (pc *PartitionCanvas) SetSession(s session.Session) {
	pc.bind(s)
	pc.Refresh()
}

// Session returns the session being shown.
func (pc *PartitionCanvas) Session() session.Session { return pc.session }

// Frame returns the session's current frame.
func (pc *PartitionCanvas) Frame() session.Frame { return pc.session.Frame() }

// Running reports whether the session still accepts events.
func (pc *PartitionCanvas) Running() bool { return pc.engine.Running() }

// Dispatch delivers ev to the session and redraws.
func (pc *PartitionCanvas) Dispatch(ev input.Event) {
	if !pc.engine.Running() {
		return
	}
	pc.engine.Dispatch(ev)
	pc.Refresh()
	if pc.OnChanged != nil {
		pc.OnChanged()
	}
	if !pc.engine.Running() && pc.OnQuit != nil {
		pc.OnQuit()
	}
}

// TypedKey forwards a key press to the session.
func (pc *PartitionCanvas) TypedKey(ev *fyne.KeyEvent) {
	if key, ok := KeyName(ev.Name); ok {
		pc.Dispatch(input.Event{Kind: input.KeyDown, Key: key, Pos: pc.lastPos})
	}
}

// KeyName maps a Fyne key to the session key names.
func KeyName(name fyne.KeyName) (string, bool) {
	switch name {
	case fyne.KeyEscape:
		return input.KeyEscape, true
	case fyne.KeyQ:
		return input.KeyQ, true
	default:
		return "", false
	}
}

func buttonOf(b desktop.MouseButton) input.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return input.ButtonLeft
	case desktop.MouseButtonSecondary:
		return input.ButtonRight
	case desktop.MouseButtonTertiary:
		return input.ButtonMiddle
	default:
		return input.ButtonNone
	}
}

func (pc *PartitionCanvas) toSpace(pos fyne.Position) model.Point {
	return pc.viewport.ToSpace(int(pos.X), int(pos.Y))
}

func (pc *PartitionCanvas) motion(pos fyne.Position) {
	p := pc.toSpace(pos)
	pc.lastPos = p
	pc.Dispatch(pc.tracker.Motion(p))
}

func (pc *PartitionCanvas) MouseDown(ev *desktop.MouseEvent) {
	p := pc.toSpace(ev.Position)
	pc.lastPos = p
	pc.Dispatch(input.Event{Kind: input.PointerDown, Pos: p, Button: buttonOf(ev.Button)})
}

func (pc *PartitionCanvas) MouseUp(ev *desktop.MouseEvent) {
	p := pc.toSpace(ev.Position)
	pc.lastPos = p
	pc.Dispatch(input.Event{Kind: input.PointerUp, Pos: p, Button: buttonOf(ev.Button)})
}

func (pc *PartitionCanvas) MouseIn(ev *desktop.MouseEvent) {
	pc.tracker.Reset()
	pc.motion(ev.Position)
}

func (pc *PartitionCanvas) MouseMoved(ev *desktop.MouseEvent) { pc.motion(ev.Position) }

func (pc *PartitionCanvas) MouseOut() { pc.tracker.Reset() }

// Dragged receives motion while a button is held.
func (pc *PartitionCanvas) Dragged(ev *fyne.DragEvent) { pc.motion(ev.Position) }

// DragEnd releases any grabbed edge; some drivers skip MouseUp after a drag.
func (pc *PartitionCanvas) DragEnd() {
	pc.Dispatch(input.Event{Kind: input.PointerUp, Pos: pc.lastPos, Button: input.ButtonLeft})
}

// Cursor shows a resize cursor over or while dragging a linked edge.
func (pc *PartitionCanvas) Cursor() desktop.Cursor {
	switch pc.session.Frame().Cursor {
	case drag.CursorResizeHorizontal:
		return desktop.HResizeCursor
	case drag.CursorResizeVertical:
		return desktop.VResizeCursor
	default:
		return desktop.DefaultCursor
	}
}

func (pc *PartitionCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPartitionCanvasRenderer(pc)
}

type partitionCanvasRenderer struct {
	pc      *PartitionCanvas
	bg      *canvas.Rectangle
	image   *canvas.Image
	objects []fyne.CanvasObject
}

func newPartitionCanvasRenderer(pc *PartitionCanvas) *partitionCanvasRenderer {
	r := &partitionCanvasRenderer{pc: pc}
	r.bg = canvas.NewRectangle(color.Black)
	r.image = canvas.NewImageFromImage(r.frameImage())
	r.image.ScaleMode = canvas.ImageScalePixels
	r.image.FillMode = canvas.ImageFillStretch
	r.objects = []fyne.CanvasObject{r.bg, r.image}
	return r
}

func (r *partitionCanvasRenderer) frameImage() *image.RGBA {
	f := r.pc.session.Frame()
	return render.Image(f.Rects, f.Preview, r.pc.viewport.Buffer)
}

// screenSize is the buffer at full scale.
func (r *partitionCanvasRenderer) screenSize() fyne.Size {
	v := r.pc.viewport
	return fyne.NewSize(float32(v.Buffer.Width*v.XScale), float32(v.Buffer.Height*v.YScale))
}

func (r *partitionCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	r.image.Resize(r.screenSize())
	r.image.Move(fyne.NewPos(0, 0))
}

func (r *partitionCanvasRenderer) Refresh() {
	r.image.Image = r.frameImage()
	r.Layout(r.pc.Size())
	r.image.Refresh()
}

func (r *partitionCanvasRenderer) MinSize() fyne.Size           { return r.screenSize() }
func (r *partitionCanvasRenderer) Destroy()                     {}
func (r *partitionCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
