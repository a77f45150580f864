package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jalvik/palaver/engine"
	"github.com/jalvik/palaver/sim"
	"github.com/jalvik/palaver/types"
	"github.com/jalvik/palaver/world"
)

// stepInterval is the wall-clock delay between simulation turns.
const stepInterval = 400 * time.Millisecond

// transcriptCap bounds the in-memory transcript.
const transcriptCap = 500

// tickMsg drives the simulation clock.
type tickMsg time.Time

// Model is the Bubble Tea model for the transcript viewer.
type Model struct {
	world      *sim.World
	orch       *engine.Orchestrator
	transcript *Transcript

	viewport viewport.Model

	width    int
	height   int
	ready    bool
	paused   bool
	quitting bool
}

// New creates a TUI model over the loaded templates. Seed fixes the run.
func New(templates []types.Template, seed int64, log *slog.Logger) Model {
	rng := engine.NewRNG(seed)
	w := sim.New(rng)
	t := NewTranscript(transcriptCap)

	svc := w.Services(world.DeliveryFunc(t.Push))
	orch := engine.New(engine.DefaultConfig(), templates, svc, rng, log)

	return Model{world: w, orch: orch, transcript: t}
}

// Run starts the Bubble Tea program.
func Run(templates []types.Template, seed int64, log *slog.Logger) error {
	m := New(templates, seed, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init schedules the first simulation tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(stepInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses, resize, and simulation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 1 // status bar
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, tick()
			}
			return m, nil

		case "n":
			if m.paused {
				m.step()
			}
			return m, nil

		default:
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tickMsg:
		if m.paused {
			return m, nil
		}
		m.step()
		return m, tick()
	}

	return m, nil
}

// step advances the world one turn and refreshes the transcript view.
func (m *Model) step() {
	m.world.Step(m.orch)
	m.refreshViewport()
}

// refreshViewport re-wraps and re-styles the transcript at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, e := range m.transcript.Entries() {
		styled = append(styled, m.renderEntry(e, width))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderEntry formats one transcript row at the given width.
func (m Model) renderEntry(e entry, width int) string {
	if e.isNote {
		return styleTopic.Render(wordwrap.String(e.note, width))
	}

	u := e.utterance
	head := styleTurnTag.Render(fmt.Sprintf("[T%03d]", u.Turn)) + " " +
		styleSpeaker.Render(m.displayName(u.Speaker)) +
		styleTopic.Render(" to "+m.displayName(u.Listener)+" ("+string(u.Topic)+")")

	body := toneStyle(u.Tone).Render(wordwrap.String(u.Text, width-2))
	return head + "\n  " + indent(body)
}

// indent prefixes continuation lines so wrapped text lines up under the first.
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}

func (m Model) displayName(id types.EntityID) string {
	if mem, ok := m.world.Member(id); ok {
		return mem.Name
	}
	return string(id)
}

// View renders the full layout: viewport + status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar()
}

// viewportKeyMap returns a viewport keymap with plain arrow scrolling kept
// and the space key freed for pause control.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
