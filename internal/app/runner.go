package app

import (
	"errors"
	"fmt"

	"example.com/paneedit/pkg/config"
	"example.com/paneedit/pkg/editor"
	"example.com/paneedit/pkg/term"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// ErrNotSupported is returned for operations the editor does not
// implement yet, such as opening a file.
var ErrNotSupported = errors.New("not supported")

// TextInput is the part of an editor the event loop drives.
type TextInput interface {
	HandleInput(in editor.Input) bool
	HandleText(text string) bool
	AdjustWindow() bool
	Render()
	ActivateCursor()
}

var _ TextInput = (*editor.Editor)(nil)

const emptyMessage = "* No editors! Press Ctrl+N to create or Ctrl+O to open!"

// Runner owns the terminal lifecycle, the workspace and the event loop.
type Runner struct {
	Screen    tcell.Screen
	Surface   *term.Screen
	Config    *config.Config
	Logger    zerolog.Logger
	Workspace *Workspace
}

// New creates a Runner with an empty workspace.
func New(cfg *config.Config, log zerolog.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{Config: cfg, Logger: log, Workspace: NewWorkspace()}
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
}

// Run starts the event loop. It initializes the screen if needed and
// returns when the user requests quit, or with the error of a request
// that cannot be served.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Surface == nil {
		r.Surface = term.New(r.Screen, r.Config.Theme)
	}
	if r.Workspace == nil {
		r.Workspace = NewWorkspace()
	}

	r.Logger.Info().Msg("run.start")
	defer func() { r.Logger.Info().Msg("run.end") }()

	r.redrawAll()
	for {
		switch ev := r.Screen.PollEvent().(type) {
		case nil:
			// Screen finalized underneath us.
			return nil
		case *tcell.EventKey:
			r.Logger.Debug().
				Int("key", int(ev.Key())).
				Str("rune", string(ev.Rune())).
				Int("modifiers", int(ev.Modifiers())).
				Msg("key")
			quit, err := r.handleKeyEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				r.Logger.Info().Msg("quit")
				return nil
			}
		case *tcell.EventResize:
			r.Screen.Sync()
			w, h := r.Screen.Size()
			r.Logger.Info().Int("width", w).Int("height", h).Msg("resize")
			r.Workspace.Layout(w, h)
			r.redrawAll()
		}
	}
}

// NewEditor creates an untitled editor in front of the others, focuses
// it and re-lays-out the workspace.
func (r *Runner) NewEditor() *editor.Editor {
	name := r.Workspace.NextUntitledName()
	w, h := r.Screen.Size()
	e := editor.New(r.Surface, name, editor.Rect{Width: w, Height: h},
		editor.WithTabWidth(r.Config.TabWidth),
		editor.WithLogger(r.Logger))
	r.Workspace.AddFront(e)
	r.Workspace.Layout(w, h)
	r.Logger.Info().Str("editor", name).Int("editors", len(r.Workspace.Editors)).Msg("editor.new")
	r.redrawAll()
	return e
}

// OpenEditor would load a file into a new editor. Loading is not
// implemented, so it always fails.
func (r *Runner) OpenEditor() error {
	err := fmt.Errorf("open editor: %w", ErrNotSupported)
	r.Logger.Error().Err(err).Msg("editor.open")
	return err
}

// CloseEditor removes the active editor and gives its columns to the rest.
func (r *Runner) CloseEditor() {
	e := r.Workspace.RemoveActive()
	if e == nil {
		return
	}
	w, h := r.Screen.Size()
	r.Workspace.Layout(w, h)
	r.Logger.Info().Str("editor", e.Name).Int("editors", len(r.Workspace.Editors)).Msg("editor.close")
	r.redrawAll()
}

// focus moves the caret to e after a focus change. Nothing is repainted.
func (r *Runner) focus(e *editor.Editor) {
	if e == nil {
		return
	}
	r.Logger.Info().Str("editor", e.Name).Msg("editor.focus")
	e.ActivateCursor()
	r.Screen.Show()
}

// refresh brings the screen up to date after e handled an input.
func (r *Runner) refresh(e TextInput, repaint bool) {
	if e.AdjustWindow() || repaint {
		e.Render()
	}
	e.ActivateCursor()
	r.Screen.Show()
}

// redrawAll repaints every editor, or the empty-workspace message.
func (r *Runner) redrawAll() {
	r.Screen.Clear()
	active := r.Workspace.Active()
	if active == nil {
		r.Screen.HideCursor()
		r.Surface.WriteDefault(4, 2, emptyMessage)
		r.Screen.Show()
		return
	}
	for _, e := range r.Workspace.Editors {
		e.AdjustWindow()
		e.Render()
	}
	active.ActivateCursor()
	r.Screen.Show()
}
