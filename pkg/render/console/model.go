// Package console renders the flight view as a Bubble Tea terminal program.
// The model owns the simulation: key events mark held intents, and a frame
// message paced at the console frame rate feeds elapsed wall time into the
// fixed-rate integrator.
package console

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maximillianbartolo/BSS/pkg/engine"
	"github.com/maximillianbartolo/BSS/pkg/entity"
	"github.com/maximillianbartolo/BSS/pkg/logging"
	"github.com/maximillianbartolo/BSS/pkg/physics"
)

// The flight view projects world units through a virtual pixel grid before
// snapping to cells. A terminal cell is about half as wide as it is tall;
// these cell dimensions keep discs round on screen and zoom values
// comparable to the windowed renderer.
const (
	cellWidthPx  = 12.0
	cellHeightPx = 24.0

	consoleFPS = 30

	minimapZoom = 0.01
	minimapW    = 24
	minimapH    = 11
)

const (
	defaultShipColor   = "#FF0000"
	altShipColor       = "#FFB000"
	shipDotColor       = "#FFFFFF"
	minimapFrameColor  = "#646464"
	destroyedTextColor = "#FF4040"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// FrameMsg paces the flight loop; one arrives per rendered frame.
type FrameMsg time.Time

// Model is the Bubble Tea model for the terminal flight console.
type Model struct {
	sim    *engine.Simulation
	logger *logging.Logger

	width  int
	height int
	ready  bool

	// held collects the intents seen since the last frame. Terminal key
	// auto-repeat stands in for real key-up events: a held key re-sends
	// KeyMsgs, so its intent stays set frame after frame.
	held      engine.ControlState
	lastFrame time.Time
}

// New creates a console model around a simulation.
func New(sim *engine.Simulation, logger *logging.Logger) Model {
	return Model{
		sim:    sim,
		logger: logger.With("component", "console"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case FrameMsg:
		now := time.Time(msg)
		m.sim.SetControls(m.held)
		if !m.lastFrame.IsZero() {
			m.sim.Advance(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		m.held = engine.ControlState{}
		return m, frameCmd()
	}

	return m, nil
}

// handleKey maps terminal keys onto the control contract: arrows rotate and
// thrust, w/a/s/d fire RCS, +/- zoom, n and r are discrete toggles.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left":
		m.held.RotateLeft = true
	case "right":
		m.held.RotateRight = true
	case "up":
		m.held.Thrust = true
	case "w":
		m.held.RCSUp = true
	case "s":
		m.held.RCSDown = true
	case "a":
		m.held.RCSLeft = true
	case "d":
		m.held.RCSRight = true
	case "+", "=":
		m.held.ZoomIn = true
	case "-":
		m.held.ZoomOut = true
	case "n":
		m.sim.ToggleSkin()
	case "r":
		m.sim.Restart()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small for the flight console"
	}

	snap := m.sim.Snapshot()

	cv := newCanvas(m.width, m.height-2)
	m.drawBodies(cv, snap)
	m.drawShip(cv, snap)
	m.drawMinimap(cv, snap)
	if snap.GameOver {
		m.drawGameOver(cv)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		cv.render(),
		m.renderStatus(snap),
		m.renderHelp(),
	)
}

// projector maps world units into the virtual pixel grid, camera centered
// on the ship.
func (m Model) projector(snap engine.Snapshot, cv *canvas) physics.Projector {
	return physics.NewProjector(
		snap.Ship.Position,
		snap.Zoom,
		float64(cv.width)*cellWidthPx,
		float64(cv.height)*cellHeightPx,
	)
}

func (m Model) drawBodies(cv *canvas, snap engine.Snapshot) {
	proj := m.projector(snap, cv)

	for _, body := range snap.Bodies {
		screen := proj.ToScreen(body.PositionWorld())
		cx := screen.X / cellWidthPx
		cy := screen.Y / cellHeightPx

		rPx := body.RadiusWorld() * snap.Zoom
		rx := rPx / cellWidthPx
		ry := rPx / cellHeightPx

		if cx+rx < 0 || cx-rx > float64(cv.width) || cy+ry < 0 || cy-ry > float64(cv.height) {
			continue
		}
		cv.fillEllipse(cx, cy, rx, ry, '█', hexColor(body.Color))
	}
}

func (m Model) drawShip(cv *canvas, snap engine.Snapshot) {
	proj := m.projector(snap, cv)
	screen := proj.ToScreen(snap.Ship.Position)

	x := int(screen.X / cellWidthPx)
	y := int(screen.Y / cellHeightPx)
	cv.set(x, y, shipGlyph(snap.Ship.Angle), shipColor(snap.Ship.Skin))
}

func (m Model) drawMinimap(cv *canvas, snap engine.Snapshot) {
	x0 := cv.width - minimapW - 1
	y0 := 1
	if x0 <= 0 || minimapH+2 > cv.height {
		return
	}

	cv.box(x0, y0, minimapW, minimapH, minimapFrameColor)

	innerW := minimapW - 2
	innerH := minimapH - 2
	proj := physics.NewProjector(
		snap.Ship.Position,
		minimapZoom,
		float64(innerW)*cellWidthPx,
		float64(innerH)*cellHeightPx,
	)

	for _, body := range snap.Bodies {
		screen := proj.ToScreen(body.PositionWorld())
		bx := int(screen.X / cellWidthPx)
		by := int(screen.Y / cellHeightPx)
		if bx < 0 || bx >= innerW || by < 0 || by >= innerH {
			continue
		}
		cv.set(x0+1+bx, y0+1+by, '●', hexColor(body.Color))
	}

	cv.set(x0+1+innerW/2, y0+1+innerH/2, '+', shipDotColor)
}

func (m Model) drawGameOver(cv *canvas) {
	msg := "SHIP DESTROYED - press R to restart"
	x := (cv.width - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	cv.write(x, cv.height/2, msg, destroyedTextColor)
}

func (m Model) renderStatus(snap engine.Snapshot) string {
	hud := snap.HUD()
	status := fmt.Sprintf("Speed: %.1f km/s Zoom: %.2f", hud.SpeedKmS, hud.Zoom)
	tail := fmt.Sprintf("tick %d | %s | skin %s", hud.Tick, hud.State, hud.Skin)
	return " " + statusStyle.Render(status) + "  " + dimStyle.Render(tail)
}

func (m Model) renderHelp() string {
	return " " + dimStyle.Render("←/→ rotate | ↑ thrust | w/a/s/d rcs | +/- zoom | n skin | r restart | q quit")
}

// shipGlyph picks the arrow for the ship's heading quadrant. Zero degrees
// points up and angles grow clockwise.
func shipGlyph(angle float64) rune {
	switch {
	case angle >= 315 || angle < 45:
		return '▲'
	case angle < 135:
		return '▶'
	case angle < 225:
		return '▼'
	default:
		return '◀'
	}
}

func shipColor(skin entity.ShipSkin) string {
	if skin == entity.SkinAlternate {
		return altShipColor
	}
	return defaultShipColor
}

// hexColor formats a color the way lipgloss expects it.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/consoleFPS, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Run drives the simulation inside a Bubble Tea program until the player
// quits or the context ends.
func Run(ctx context.Context, sim *engine.Simulation, logger *logging.Logger) error {
	p := tea.NewProgram(New(sim, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("console renderer failed: %w", err)
	}
	return nil
}
