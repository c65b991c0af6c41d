package ui

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/tsukinoko-kun/listkit/internal/config"
	"github.com/tsukinoko-kun/listkit/internal/docker"
	"github.com/tsukinoko-kun/listkit/internal/logger"
	"github.com/tsukinoko-kun/listkit/internal/models"
	"github.com/tsukinoko-kun/listkit/internal/tree"
)

const refreshInterval = 2 * time.Second

// containerLister is the part of the Docker client the application reads.
type containerLister interface {
	ListContainersGrouped(ctx context.Context) ([]docker.ContainerGroup, error)
}

// App is the showcase application.
type App struct {
	window   *app.Window
	theme    *Theme
	log      *logger.Logger
	settings *config.Settings
	docker   containerLister
	// invalidate requests a new frame. Set by Run.
	invalidate func()

	sidebar *Sidebar
	views   map[models.Source]*TreeView

	mu        sync.RWMutex
	current   models.Source
	titles    map[models.Source]string
	forests   map[models.Source][]*tree.Node
	lastError error
}

// NewApp creates a new application instance. dockerClient may be nil, in
// which case the container source is not offered.
func NewApp(settings *config.Settings, log *logger.Logger, dockerClient *docker.Client) *App {
	theme := NewTheme()

	a := &App{
		theme:    theme,
		log:      log,
		settings: settings,
		current:  settings.Source,
		views:    make(map[models.Source]*TreeView),
		titles:   make(map[models.Source]string),
		forests:  make(map[models.Source][]*tree.Node),
	}
	if dockerClient != nil {
		a.docker = dockerClient
	}

	sources := a.Sources()
	a.sidebar = NewSidebar(theme, sources, a.onSourceChange)
	for _, src := range sources {
		a.views[src] = NewTreeView(theme, unit.Dp(settings.NestingDepth))
	}
	return a
}

// Sources returns the sources the application can show.
func (a *App) Sources() []models.Source {
	sources := []models.Source{models.SourceDemo}
	if a.settings.TreeFile != "" {
		sources = append(sources, models.SourceFile)
	}
	if a.docker != nil {
		sources = append(sources, models.SourceDocker)
	}
	return sources
}

// Run starts the application event loop.
func (a *App) Run() error {
	a.window = new(app.Window)
	a.window.Option(
		app.Title("listkit"),
		app.Size(unit.Dp(a.settings.WindowWidth), unit.Dp(a.settings.WindowHeight)),
		app.MinSize(unit.Dp(320), unit.Dp(240)),
	)
	a.invalidate = a.window.Invalidate

	a.load(models.SourceDemo)
	if a.settings.TreeFile != "" {
		a.load(models.SourceFile)
	}
	if a.docker != nil {
		go a.refreshLoop()
	}

	var ops op.Ops
	for {
		switch e := a.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// load reads the tree of a static source.
func (a *App) load(src models.Source) {
	log := a.log.With("source", string(src))

	var (
		doc      *tree.Document
		warnings []tree.Warning
		err      error
	)
	switch src {
	case models.SourceDemo:
		doc, warnings, err = tree.Demo()
	case models.SourceFile:
		doc, warnings, err = tree.LoadFile(a.settings.TreeFile)
		log = log.With("path", a.settings.TreeFile)
	default:
		return
	}

	for _, w := range warnings {
		log.With("field", w.Field).Warn(w.Message)
	}
	if err != nil {
		log.Error(err, "failed to load list tree")
		a.setError(err)
		return
	}

	title := doc.Title
	if title == "" {
		title = src.String()
	}

	a.mu.Lock()
	a.titles[src] = title
	a.forests[src] = doc.Items
	a.mu.Unlock()
	log.WithFields(map[string]any{"nodes": tree.Count(doc.Items)}).Debug("list tree loaded")
}

func (a *App) refreshLoop() {
	a.refreshContainers()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for range ticker.C {
		if a.currentSource() != models.SourceDocker {
			continue
		}
		a.refreshContainers()
		a.redraw()
	}
}

// refreshContainers reloads the Docker source and reports whether it succeeded.
func (a *App) refreshContainers() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	groups, err := a.docker.ListContainersGrouped(ctx)
	if err != nil {
		a.log.With("source", string(models.SourceDocker)).Error(err, "failed to list containers")
		a.setError(err)
		return false
	}

	nodes := tree.FromContainerGroups(groups)
	a.mu.Lock()
	a.titles[models.SourceDocker] = models.SourceDocker.String()
	a.forests[models.SourceDocker] = nodes
	a.lastError = nil
	a.mu.Unlock()
	return true
}

func (a *App) redraw() {
	if a.invalidate != nil {
		a.invalidate()
	}
}

func (a *App) setError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = err
}

func (a *App) currentSource() models.Source {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

func (a *App) onSourceChange(src models.Source) {
	a.mu.Lock()
	changed := a.current != src
	a.current = src
	a.mu.Unlock()

	if changed && src == models.SourceDocker {
		go func() {
			if a.refreshContainers() {
				a.redraw()
			}
		}()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.theme.Colors.Background, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(180))
			gtx.Constraints.Max.X = gtx.Constraints.Min.X
			return a.layoutSidebar(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutDivider(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.layoutContent(gtx)
		}),
	)
}

func (a *App) layoutSidebar(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.theme.Colors.SidebarBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	a.sidebar.Layout(gtx, a.currentSource())
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (a *App) layoutDivider(gtx layout.Context) layout.Dimensions {
	width := gtx.Dp(unit.Dp(1))
	rect := clip.Rect{Max: image.Point{X: width, Y: gtx.Constraints.Max.Y}}
	paint.FillShape(gtx.Ops, a.theme.Colors.Border, rect.Op())
	return layout.Dimensions{Size: image.Point{X: width, Y: gtx.Constraints.Max.Y}}
}

func (a *App) layoutContent(gtx layout.Context) layout.Dimensions {
	a.mu.RLock()
	src := a.current
	title := a.titles[src]
	nodes := a.forests[src]
	lastErr := a.lastError
	a.mu.RUnlock()

	view, ok := a.views[src]
	if !ok {
		return layout.Dimensions{}
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutError(gtx, lastErr)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return view.Layout(gtx, title, nodes)
		}),
	)
}

func (a *App) layoutError(gtx layout.Context, err error) layout.Dimensions {
	if err == nil {
		return layout.Dimensions{}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = errors.New("docker daemon did not answer in time")
	}

	return layout.Inset{Top: unit.Dp(8), Left: unit.Dp(16), Right: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				rr := gtx.Dp(unit.Dp(6))
				rect := clip.RRect{
					Rect: image.Rectangle{Max: gtx.Constraints.Min},
					NE:   rr, NW: rr, SE: rr, SW: rr,
				}
				paint.FillShape(gtx.Ops, a.theme.Colors.ErrorBg, rect.Op(gtx.Ops))
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Body2(a.theme.Material, err.Error())
					label.Color = a.theme.Colors.ErrorText
					return label.Layout(gtx)
				})
			}),
		)
	})
}
