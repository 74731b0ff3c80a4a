package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyborg-feline/internal/core"
	"github.com/vovakirdan/cyborg-feline/internal/game"
)

// Options controls presentation of a running session.
type Options struct {
	Render        game.RenderOptions
	ShowHelp      bool
	ScreenshotDir string // Empty means ~/.clf/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	session   *game.Session
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	help      help.Model
	logger    *log.Logger
	pending   []core.Event        // Events collected since the last frame
	held      []core.Key          // Keys pressed last frame, released at the start of the next
	lastPress map[core.Key]uint64 // Frame each key was last pressed in
	frame     uint64
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		session:   session,
		config:    cfg,
		opts:      opts,
		keys:      NewKeyMapper(),
		help:      h,
		logger:    logger,
		lastPress: make(map[core.Key]uint64),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	return m
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight(termH int) int {
	if m.opts.ShowHelp {
		return max(termH-1, 0)
	}
	return max(termH, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	ev, ok := m.keys.MapKeyToEvent(msg)
	if !ok {
		return m, nil
	}
	m.pending = append(m.pending, ev)
	return m, nil
}

// handleResize resizes the screen buffer. The world keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// repeatDelay covers the pause before a terminal starts auto-repeating a
// held key. A press of the same key within this window counts as a repeat.
const repeatDelay = 500 * time.Millisecond

// repeatFrames converts repeatDelay to frames at the current tick rate.
func (m Model) repeatFrames() uint64 {
	rate := m.config.TickRate
	if rate <= 0 {
		rate = 15
	}
	return max(1, uint64(repeatDelay*time.Duration(rate)/time.Second))
}

// frameEvents assembles the events for one frame.
// Terminals report presses only. A key pressed last frame and not pressed
// again is released; a key pressed again stays held and gets no release.
// Presses of a key seen within repeatDelay are marked as repeats, which the
// session ignores outside Play.
func (m *Model) frameEvents() []core.Event {
	m.frame++

	var pressed []core.Key
	for _, ev := range m.pending {
		if ev.Kind == core.EventKeyDown && !slices.Contains(pressed, ev.Key) {
			pressed = append(pressed, ev.Key)
		}
	}

	events := make([]core.Event, 0, len(m.held)+len(m.pending))
	for _, k := range m.held {
		if !slices.Contains(pressed, k) {
			events = append(events, core.KeyUpEvent(k))
		}
	}

	emitted := make(map[core.Key]bool, len(pressed))
	for _, ev := range m.pending {
		if ev.Kind != core.EventKeyDown {
			events = append(events, ev)
			continue
		}
		if emitted[ev.Key] {
			continue
		}
		emitted[ev.Key] = true

		if last, ok := m.lastPress[ev.Key]; ok && m.frame-last <= m.repeatFrames() {
			ev = core.KeyRepeatEvent(ev.Key)
		}
		m.lastPress[ev.Key] = m.frame
		events = append(events, ev)
	}

	m.held = pressed
	m.pending = nil
	return events
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.frameEvents())
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	game.Render(m.session.Scene(), m.screen, m.opts.Render)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".clf", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("clf_%s_%s.txt", m.session.Mode(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path, "session", m.session.ID())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game.Render(m.session.Scene(), m.screen, m.opts.Render)
	out := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keys.Keys())
	}
	return out
}

// Run starts the Bubble Tea program with the given session.
func Run(session *game.Session, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(session, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
