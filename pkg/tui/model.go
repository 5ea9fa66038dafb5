// Package tui is the Bubble Tea front end of the dashboard. It owns the
// program loop: terminal input is decoded into the core's key model, the
// shared event channel is drained into the state machine, and every frame
// is painted from the resulting AppState with a weather-aware palette.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/skycast/pkg/app"
	"gitlab.com/tinyland/lab/skycast/pkg/particles"
	"gitlab.com/tinyland/lab/skycast/pkg/theme"
)

// eventMsg carries one core event from the channel into Update.
type eventMsg struct {
	ev app.Event
}

// bootstrapMsg requests the initial Bootstrap transition. It exists so the
// transition runs inside Update, on the same goroutine as every other one.
type bootstrapMsg struct{}

// Model is the root Bubble Tea model. All mutation goes through the state
// machine; the model itself only tracks render-side concerns.
type Model struct {
	state      *app.AppState
	engine     *particles.Engine // nil with motion fully disabled
	ctx        context.Context
	capability theme.Capability
	customSeed *theme.Seed
	height     int
	err        error
}

// WithCustomSeed pins the palette to a user-supplied gradient seed instead
// of the built-in themes.
func (m Model) WithCustomSeed(seed theme.Seed) Model {
	m.customSeed = &seed
	return m
}

// NewModel wires the state machine and particle engine into a program
// model. ctx cancellation stops every producer the core starts.
func NewModel(ctx context.Context, state *app.AppState, engine *particles.Engine, capability theme.Capability) Model {
	return Model{
		state:      state,
		engine:     engine,
		ctx:        ctx,
		capability: capability,
		height:     24,
	}
}

// Err returns the startup error that terminated the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return bootstrapMsg{} }, m.waitForEvent())
}

// waitForEvent blocks on the shared channel until the next core event.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-m.state.Events():
			return eventMsg{ev: ev}
		case <-m.ctx.Done():
			return eventMsg{ev: app.Quit{}}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key, ok := translateKey(msg)
		if !ok {
			return m, nil
		}
		_ = m.state.HandleEvent(m.ctx, app.Input{Term: key})
		if !m.state.Running() {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.height = msg.Height
		_ = m.state.HandleEvent(m.ctx, app.Input{Term: app.ResizeEvent{
			Width:  msg.Width,
			Height: msg.Height,
		}})
		return m, nil

	case eventMsg:
		var cmds []tea.Cmd
		if _, ok := msg.ev.(app.ForceRedraw); ok {
			cmds = append(cmds, tea.ClearScreen)
		}
		if err := m.state.HandleEvent(m.ctx, msg.ev); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if !m.state.Running() {
			return m, tea.Quit
		}
		cmds = append(cmds, m.waitForEvent())
		return m, tea.Batch(cmds...)

	case bootstrapMsg:
		if err := m.state.HandleEvent(m.ctx, app.Bootstrap{}); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// palette derives the frame's colors from the active theme and, in auto
// mode, the weather on screen.
func (m Model) palette() theme.Palette {
	if m.customSeed != nil {
		return theme.Custom(*m.customSeed, m.capability)
	}
	category := weatherCategory(m.state)
	isDay := true
	if m.state.Weather != nil {
		isDay = m.state.Weather.Current.IsDay
	}
	return theme.For(m.state.Settings.Theme, category, isDay, m.capability)
}
