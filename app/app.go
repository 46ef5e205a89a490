// Package app hosts an Application on an e-ink device: it is the event
// handler the device main loop calls once per native event.
package app

import (
	"fmt"
	"time"

	"inkpad/hal"
	"inkpad/internal/backend"
	"inkpad/internal/buildinfo"
	"inkpad/internal/gui"
	"inkpad/internal/resources"
	"inkpad/internal/storage"
)

// Config customizes a Runner. The zero value uses the device geometry,
// the stock fonts, quit-on-any-key and in-memory storage.
type Config struct {
	// Geometry overrides values queried from the device when non-zero.
	Geometry backend.Geometry
	Fonts    map[resources.Role]resources.FontSpec
	Keys     *KeyMap
	// FontRole picks the font for text; nil always uses the regular font.
	FontRole backend.FontRoleFunc
	Visuals  *gui.Visuals
	Storage  storage.Store
	Logger   hal.Logger
	Backend  string
	Now      func() time.Time
}

// Runner drives one toolkit frame per native event.
type Runner struct {
	dev hal.Device
	app Application
	log hal.Logger

	geo      backend.Geometry
	fonts    *resources.Store
	frames   *backend.Frames
	renderer *backend.Renderer
	refresh  *backend.RefreshController
	repaint  *backend.RepaintFlag
	keys     KeyMap
	store    storage.Store

	frame  Frame
	now    func() time.Time
	start  time.Time
	closed bool

	lastRefresh backend.Refresh
	lastStats   backend.RenderStats
}

var (
	_ hal.EventHandler = (*Runner)(nil)
	_ hal.Ticker       = (*Runner)(nil)
)

// New loads the fonts, prepares the toolkit and calls the application's
// Setup.
func New(dev hal.Device, application Application, cfg Config) (*Runner, error) {
	if cfg.Logger == nil {
		cfg.Logger = hal.DiscardLogger{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Fonts == nil {
		cfg.Fonts = resources.DefaultSpecs()
	}
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemory()
	}
	keys := DefaultKeyMap()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}

	geo := backend.QueryGeometry(dev, cfg.Geometry)
	fonts, err := resources.Load(dev, cfg.Fonts)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	ctx := gui.NewContext()
	visuals := gui.LightVisuals()
	if cfg.Visuals != nil {
		visuals = *cfg.Visuals
	}
	ctx.SetVisuals(visuals)
	ctx.SetPixelsPerPoint(geo.PixelsPerPoint)
	ctx.SetMeasurer(backend.NewMeasurer(dev, fonts, geo, cfg.FontRole))

	r := &Runner{
		dev:      dev,
		app:      application,
		log:      cfg.Logger,
		geo:      geo,
		fonts:    fonts,
		frames:   backend.NewFrames(ctx, cfg.Now),
		renderer: backend.NewRenderer(dev, fonts, geo, cfg.FontRole),
		refresh:  backend.NewRefreshController(dev, geo),
		repaint:  backend.NewRepaintFlag(),
		keys:     keys,
		store:    cfg.Storage,
		now:      cfg.Now,
	}
	r.start = r.now()
	r.frame = Frame{
		Info: IntegrationInfo{
			Backend:        cfg.Backend,
			ScreenWidth:    geo.DeviceWidth,
			ScreenHeight:   geo.DeviceHeight,
			PixelsPerPoint: geo.PixelsPerPoint,
		},
		repaint: r.repaint,
	}

	r.logf("inkpad %s: screen %dx%d px, %.2f px/pt", buildinfo.Full(), geo.DeviceWidth, geo.DeviceHeight, geo.PixelsPerPoint)
	for _, role := range []resources.Role{resources.RoleRegular, resources.RoleTitle, resources.RoleCaption} {
		if spec, ok := fonts.Spec(role); ok {
			r.logf("font %s: %s %dpx", role, spec.Name, spec.Size)
		}
	}

	application.Setup(ctx, &r.frame, r.store)
	return r, nil
}

// HandleEvent processes one native event to completion. It always returns
// 0. A mismatched frame is a programming error and panics.
func (r *Runner) HandleEvent(ev hal.Event) int32 {
	if r.closed {
		return 0
	}
	switch ev.Kind {
	case hal.EventKeyPress:
		r.handleKey(ev.P1)
	case hal.EventShow:
		r.dev.SetPanelMode(hal.PanelDisabled)
		r.runFrame(hal.EventShow, nil)
	case hal.EventPointerDown, hal.EventPointerUp, hal.EventPointerDrag:
		ppp := r.frames.Context().PixelsPerPoint()
		r.runFrame(ev.Kind, backend.Translate(ev, ppp))
	case hal.EventRepaint:
		r.runFrame(hal.EventRepaint, nil)
	case hal.EventExit:
		r.flush()
	}
	return 0
}

// Tick runs a frame if a repaint was requested since the last one.
func (r *Runner) Tick() {
	if r.closed {
		return
	}
	if r.repaint.FetchAndClear() {
		r.runFrame(hal.EventRepaint, nil)
	}
}

func (r *Runner) handleKey(code int32) {
	switch action := r.keys.Lookup(code); action {
	case ActionQuit:
		r.logf("key %d: quit", code)
		r.quit()
	case ActionRefresh:
		r.runFrame(hal.EventShow, nil)
	}
}

func (r *Runner) runFrame(trigger hal.EventKind, events []gui.Event) {
	if trigger == hal.EventShow {
		// A full refresh repaints everything; a pending request is moot.
		r.repaint.FetchAndClear()
	}

	ctx := r.frames.Context()
	r.frames.BeginFrame(r.geo.Input(events, r.now().Sub(r.start).Seconds()))
	r.frame.quit = false
	r.app.Update(ctx, &r.frame)
	if r.frame.quit {
		ctx.RequestQuit()
	}
	out, shapes := r.frames.EndFrame()

	r.lastStats = r.renderer.Draw(shapes)
	if r.lastStats.Dropped > 0 {
		r.logf("frame %d: dropped %d unsupported shapes", r.frames.Count(), r.lastStats.Dropped)
	}
	r.lastRefresh = r.refresh.AfterFrame(trigger, out)

	if out.NeedsRepaint {
		r.repaint.Request()
	}
	if out.Quit {
		r.quit()
	}
}

func (r *Runner) quit() {
	r.flush()
	r.closed = true
	r.dev.CloseApp()
}

func (r *Runner) flush() {
	if err := r.store.Flush(); err != nil {
		r.logf("storage: %v", err)
	}
}

func (r *Runner) logf(format string, args ...any) {
	r.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Context returns the toolkit context.
func (r *Runner) Context() *gui.Context { return r.frames.Context() }

// Geometry returns the geometry in use.
func (r *Runner) Geometry() backend.Geometry { return r.geo }

// RepaintSignal returns the runner's repaint flag.
func (r *Runner) RepaintSignal() RepaintSignal { return r.repaint }

// LastRefresh returns the refresh issued after the most recent frame.
func (r *Runner) LastRefresh() backend.Refresh { return r.lastRefresh }

// LastStats returns what the renderer did with the most recent frame.
func (r *Runner) LastStats() backend.RenderStats { return r.lastStats }

// Frames returns the number of frames driven so far.
func (r *Runner) Frames() uint64 { return r.frames.Count() }

// Closed reports whether the runner has asked the device to close.
func (r *Runner) Closed() bool { return r.closed }
