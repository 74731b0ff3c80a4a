package tui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/cyborg-feline/internal/core"
	"github.com/vovakirdan/cyborg-feline/internal/game"
	"github.com/vovakirdan/cyborg-feline/internal/world"
)

func testModel(t *testing.T, mode game.Mode, actor core.Coord, opts Options, decoys ...world.Item) Model {
	t.Helper()
	grid, err := core.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	target := world.Item{Coord: core.C(4, 4), Target: true, Description: []string{world.TargetDescription}, Symbol: 'k'}
	reg, err := world.NewRegistry(append([]world.Item{target}, decoys...))
	if err != nil {
		t.Fatal(err)
	}

	gopts := game.DefaultOptions()
	gopts.Grid = grid
	gopts.Decoys = 1
	gopts.Treasures = [][]string{{"A rock."}}
	gopts.Seed = 1

	session := game.NewSession(mode, game.Board{Grid: grid, Registry: reg, Actor: world.NewActor(actor)}, gopts)
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 15}
	if opts.Render.CellWidth == 0 {
		opts.Render = game.DefaultRenderOptions()
	}
	return NewModel(session, cfg, opts)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestKeyPressIsATap(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(1, 1), Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, TickMsg{})
	if got := m.session.Board().Actor.Pos; got != core.C(2, 1) {
		t.Fatalf("after press: actor at %v, want (2, 1)", got)
	}

	// The next frame releases the key, so the cyborg stops.
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})
	if got := m.session.Board().Actor.Pos; got != core.C(2, 1) {
		t.Errorf("after release: actor at %v, want (2, 1)", got)
	}
}

func TestRepeatedPressKeepsMoving(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(0, 0), Options{})

	for range 3 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = send(t, m, TickMsg{})
	}
	if got := m.session.Board().Actor.Pos; got != core.C(0, 3) {
		t.Errorf("actor at %v, want (0, 3)", got)
	}
}

func TestFrameEvents(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(0, 0), Options{})
	m.pending = []core.Event{core.KeyDownEvent(core.KeyUp), core.KeyDownEvent(core.KeyUp), core.KeyDownEvent("x")}

	first := m.frameEvents()
	wantFirst := []core.Event{core.KeyDownEvent(core.KeyUp), core.KeyDownEvent("x")}
	if !slices.Equal(first, wantFirst) {
		t.Fatalf("first frame = %+v, want %+v", first, wantFirst)
	}

	second := m.frameEvents()
	wantSecond := []core.Event{core.KeyUpEvent(core.KeyUp), core.KeyUpEvent("x")}
	if !slices.Equal(second, wantSecond) {
		t.Fatalf("second frame = %+v, want %+v", second, wantSecond)
	}

	if third := m.frameEvents(); len(third) != 0 {
		t.Errorf("third frame = %+v, want none", third)
	}
}

func TestFrameEventsHeldKeyRepeats(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(0, 0), Options{})

	m.pending = []core.Event{core.KeyDownEvent(core.KeyDown)}
	m.frameEvents()

	// Pressed again next frame: still held, so no release, and marked as a repeat.
	m.pending = []core.Event{core.KeyDownEvent(core.KeyDown)}
	got := m.frameEvents()
	want := []core.Event{core.KeyRepeatEvent(core.KeyDown)}
	if !slices.Equal(got, want) {
		t.Fatalf("held frame = %+v, want %+v", got, want)
	}

	// After a pause longer than the repeat delay a press is fresh again.
	for range m.repeatFrames() + 1 {
		m.frameEvents()
	}
	m.pending = []core.Event{core.KeyDownEvent(core.KeyDown)}
	got = m.frameEvents()
	want = []core.Event{core.KeyDownEvent(core.KeyDown)}
	if !slices.Equal(got, want) {
		t.Errorf("fresh press = %+v, want %+v", got, want)
	}
}

func TestHoldingKeyIntoFelineKeepsWinScreen(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(4, 3), Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, TickMsg{})
	if got := m.session.Mode(); got != game.ModeWin {
		t.Fatalf("after bumping feline: mode = %s, want win", got)
	}
	id := m.session.ID()

	// Terminal auto-repeat while the arrow is still held.
	for range 5 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = send(t, m, TickMsg{})
	}
	if got := m.session.Mode(); got != game.ModeWin {
		t.Errorf("after auto-repeat: mode = %s, want win", got)
	}
	if m.session.ID() != id {
		t.Error("auto-repeat must not start a new world")
	}

	// Released, then a fresh press plays again.
	for range m.repeatFrames() + 1 {
		m, _ = send(t, m, TickMsg{})
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, TickMsg{})
	if got := m.session.Mode(); got != game.ModePlay {
		t.Errorf("after fresh press: mode = %s, want play", got)
	}
	if m.session.ID() == id {
		t.Error("fresh press on the win screen should start a new world")
	}
}

func TestHoldingKeyAgainstDecoyBumpsOnce(t *testing.T) {
	rock := world.Item{Coord: core.C(2, 1), Description: []string{"A rock."}, Symbol: '?'}
	m := testModel(t, game.ModePlay, core.C(1, 1), Options{}, rock)

	for i := range 6 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, _ = send(t, m, TickMsg{})
		if got := m.session.Mode(); got != game.ModeMessage {
			t.Fatalf("frame %d: mode = %s, want message", i, got)
		}
	}
	if got := m.session.Stats().Bumps; got != 1 {
		t.Errorf("bumps = %d, want 1", got)
	}

	// Another key dismisses the description; the cyborg stays put.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m, _ = send(t, m, TickMsg{})
	if got := m.session.Mode(); got != game.ModePlay {
		t.Errorf("after dismiss: mode = %s, want play", got)
	}
	if got := m.session.Board().Actor.Pos; got != core.C(1, 1) {
		t.Errorf("actor at %v, want (1, 1)", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, game.ModeSplash, core.C(0, 0), Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command returned %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestTickContinues(t *testing.T) {
	m := testModel(t, game.ModeSplash, core.C(0, 0), Options{})
	_, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestResizeKeepsWorld(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(0, 0), Options{ShowHelp: true})
	before := m.session.ID()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 12})
	if m.screen.Width() != 30 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, want 30x11", m.screen.Width(), m.screen.Height())
	}
	if m.session.ID() != before {
		t.Error("resize must not regenerate the world")
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m := testModel(t, game.ModePlay, core.C(0, 0), Options{ShowHelp: true})

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "@") {
		t.Error("view should show the cyborg")
	}
	if !strings.Contains(view, "↑ up") {
		t.Error("view should show the help footer")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := testModel(t, game.ModePlay, core.C(0, 0), Options{ScreenshotDir: dir})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "@") {
		t.Error("screenshot should contain the cyborg")
	}
}
