// pkg/render/console/model_test.go
package console

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maximillianbartolo/BSS/pkg/config"
	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/event"
	"github.com/maximillianbartolo/BSS/pkg/logging"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger := logging.NewLoggerAt(slog.LevelError)
	sim, err := engine.NewSimulation(config.DefaultConfig(), event.NewEventBus(), logger)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return New(sim, logger)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestModel_KeyIntents(t *testing.T) {
	tests := []struct {
		key      string
		expected engine.ControlState
	}{
		{"left", engine.ControlState{RotateLeft: true}},
		{"right", engine.ControlState{RotateRight: true}},
		{"up", engine.ControlState{Thrust: true}},
		{"w", engine.ControlState{RCSUp: true}},
		{"s", engine.ControlState{RCSDown: true}},
		{"a", engine.ControlState{RCSLeft: true}},
		{"d", engine.ControlState{RCSRight: true}},
		{"+", engine.ControlState{ZoomIn: true}},
		{"=", engine.ControlState{ZoomIn: true}},
		{"-", engine.ControlState{ZoomOut: true}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t)
			updated, _ := m.Update(keyMsg(tt.key))
			got := updated.(Model).held
			if got != tt.expected {
				t.Errorf("held after %q = %+v, want %+v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestModel_IntentsAccumulateAcrossKeys(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("up"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("right"))
	m = updated.(Model)

	want := engine.ControlState{Thrust: true, RotateRight: true}
	if m.held != want {
		t.Errorf("held = %+v, want %+v", m.held, want)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t)
			_, cmd := m.Update(keyMsg(key))
			if cmd == nil {
				t.Fatalf("expected quit command for %q", key)
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected tea.QuitMsg for %q, got %T", key, cmd())
			}
		})
	}
}

func TestModel_FrameAdvancesSimulation(t *testing.T) {
	m := newTestModel(t)

	base := time.Now()
	updated, cmd := m.Update(FrameMsg(base))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a follow-up frame command")
	}
	if got := m.sim.Tick(); got != 0 {
		t.Errorf("tick after first frame = %d, want 0", got)
	}

	// 50 ms at the 60 Hz step size is three ticks.
	updated, _ = m.Update(FrameMsg(base.Add(50 * time.Millisecond)))
	m = updated.(Model)
	if got := m.sim.Tick(); got != 3 {
		t.Errorf("tick after 50ms frame = %d, want 3", got)
	}
}

func TestModel_FrameClearsHeldIntents(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("up"))
	m = updated.(Model)
	updated, _ = m.Update(FrameMsg(time.Now()))
	m = updated.(Model)

	if m.held != (engine.ControlState{}) {
		t.Errorf("held after frame = %+v, want cleared", m.held)
	}
}

func TestModel_SkinToggleKey(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(Model)

	if got := m.sim.Snapshot().Ship.Skin; got != entity.SkinAlternate {
		t.Errorf("skin after n = %v, want %v", got, entity.SkinAlternate)
	}

	updated, _ = m.Update(keyMsg("n"))
	m = updated.(Model)
	if got := m.sim.Snapshot().Ship.Skin; got != entity.SkinDefault {
		t.Errorf("skin after second n = %v, want %v", got, entity.SkinDefault)
	}
}

func TestModel_RestartKeyIgnoredWhileFlying(t *testing.T) {
	m := newTestModel(t)

	before := m.sim.Snapshot()
	updated, _ := m.Update(keyMsg("r"))
	m = updated.(Model)
	after := m.sim.Snapshot()

	if before.Ship.Position != after.Ship.Position {
		t.Error("restart while flying moved the ship")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)

	t.Run("BeforeWindowSize", func(t *testing.T) {
		if got := m.View(); got != "Initializing..." {
			t.Errorf("View() = %q before sizing", got)
		}
	})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	t.Run("ContainsHUD", func(t *testing.T) {
		view := m.View()
		if !strings.Contains(view, "Speed:") || !strings.Contains(view, "Zoom:") {
			t.Error("View() missing the HUD status line")
		}
	})

	t.Run("ContainsShipGlyph", func(t *testing.T) {
		view := m.View()
		// Heading 45 degrees sits on the right-quadrant boundary.
		if !strings.ContainsRune(view, '▶') {
			t.Error("View() missing the ship glyph")
		}
	})

	t.Run("TooSmall", func(t *testing.T) {
		small, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
		if got := small.(Model).View(); !strings.Contains(got, "too small") {
			t.Errorf("View() = %q for tiny terminal", got)
		}
	})
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '▲'},
		{44.9, '▲'},
		{45, '▶'},
		{90, '▶'},
		{135, '▼'},
		{180, '▼'},
		{225, '◀'},
		{270, '◀'},
		{315, '▲'},
		{359.9, '▲'},
	}

	for _, tt := range tests {
		if got := shipGlyph(tt.angle); got != tt.expected {
			t.Errorf("shipGlyph(%v) = %q, want %q", tt.angle, string(got), string(tt.expected))
		}
	}
}
