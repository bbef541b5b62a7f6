package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacmen/internal/config"
	"github.com/vovakirdan/pacmen/internal/core"
	"github.com/vovakirdan/pacmen/internal/sprite"
)

// Settings holds what the model needs besides the manager and surface.
type Settings struct {
	Runtime  core.RuntimeConfig
	Controls config.ControlsConfig
	Logger   *log.Logger

	// ScreenshotDir is where ctrl+s writes. Empty means ~/.pacmen/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for the sprite page.
type Model struct {
	manager  *sprite.Manager
	surface  *Surface
	screen   *core.Screen
	config   core.RuntimeConfig
	controls config.ControlsConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	status   string // Transient message shown in the footer
	quitting bool
}

// NewModel creates a model drawing manager's sprites through surface.
// The manager's viewport is set to the area above the footer.
func NewModel(manager *sprite.Manager, surface *Surface, s Settings) Model {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		manager:  manager,
		surface:  surface,
		screen:   core.NewScreen(s.Runtime.ScreenW, s.Runtime.ScreenH),
		config:   s.Runtime,
		controls: s.Controls,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		shotDir:  s.ScreenshotDir,
	}
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("started",
		"sprites", m.manager.Len(),
		"interval", m.config.TickInterval,
		"viewport", m.manager.Viewport(),
	)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		if err := m.manager.Tick(); err != nil {
			m.logger.Error("tick failed", "error", err)
		}
		return m, tickCmd(m.config.TickInterval)
	}

	return m, nil
}

// handleMouse spawns a sprite where the left button was pressed.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil // Click on the footer
	}

	// Centre of the clicked cell.
	pos := m.config.ToWorld(msg.X, msg.Y).Add(core.NewVector(m.config.CellW/2, m.config.CellH/2))
	m.manager.Spawn(sprite.PointerEvent{Position: pos}, nil, nil)
	m.status = ""
	return m, nil
}

// handleKey processes the control keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	defaults := m.manager.Defaults()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quitting", "sprites", m.manager.Len())
		return m, tea.Quit

	case key.Matches(msg, m.keys.SpeedUp), key.Matches(msg, m.keys.SpeedDown):
		step := m.controls.SpeedStep
		if key.Matches(msg, m.keys.SpeedDown) {
			step = -step
		}
		speed, _ := defaults.Speed()
		speed = core.ClampF(speed+step, m.controls.MinSpeed, m.controls.MaxSpeed)
		m.manager.SetDefaults(defaults.WithSpeed(speed))

	case key.Matches(msg, m.keys.Grow), key.Matches(msg, m.keys.Shrink):
		step := m.controls.SizeStep
		if key.Matches(msg, m.keys.Shrink) {
			step = -step
		}
		size, ok := defaults.Size()
		if !ok {
			size = defaultSpriteSize
		}
		size = core.ClampF(size+step, m.controls.MinSize, m.controls.MaxSize)
		m.manager.SetDefaults(defaults.WithSize(size))

	case key.Matches(msg, m.keys.Behavior):
		b, _ := defaults.Behavior()
		if b == sprite.BehaviorNormal {
			b = sprite.BehaviorFollowPointer
		} else {
			b = sprite.BehaviorNormal
		}
		m.manager.SetDefaults(defaults.WithBehavior(b))

	case key.Matches(msg, m.keys.RemoveLast):
		m.manager.RemoveNewest()

	case key.Matches(msg, m.keys.Clear):
		n := m.manager.Clear()
		m.status = fmt.Sprintf("cleared %d", n)

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// layout sizes the sprite area to the space above the footer and hands the
// new extent to the manager.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	footerH := lipgloss.Height(m.footer())
	h := core.Max(m.config.ScreenH-footerH, 1)

	m.screen.Resize(m.config.ScreenW, h)
	area := m.config
	area.ScreenH = h
	m.manager.SetViewport(area.Viewport())
}

// footer renders the status line and help.
func (m Model) footer() string {
	defaults := m.manager.Defaults()
	speed, _ := defaults.Speed()
	size, ok := defaults.Size()
	if !ok {
		size = defaultSpriteSize
	}
	b, _ := defaults.Behavior()

	status := statusStyle.Render("pacmen") +
		statusDimStyle.Render(fmt.Sprintf("%d live  speed %.2f  size %.0f  %s", m.manager.Len(), speed, size, b))
	if m.status != "" {
		status += statusDimStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

// saveScreenshot saves the current sprite area to a text file.
func (m *Model) saveScreenshot() {
	dir := m.shotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".pacmen", "screenshots")
	}

	m.screen.Clear()
	m.surface.Render(m.screen)

	path := filepath.Join(dir, fmt.Sprintf("pacmen_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.surface.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
