// Package tui provides the Bubble Tea shell for the snake game.
// It runs one game per program, locally or over SSH, and maps terminal
// keys to game input.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Minimum terminal size: the board plus the help line.
const (
	minWidth  = snake.CanvasWidth
	minHeight = snake.CanvasHeight + 1
)

const inputBuffer = 16

// Options configures a game session.
type Options struct {
	Config config.Config
	Seed   int64 // 0 = time based
	Logger *log.Logger
}

// runnerDoneMsg is sent when the runner has returned.
type runnerDoneMsg struct{ err error }

// session holds the state shared by every copy of the model.
type session struct {
	game   *snake.Game
	runner *loop.Runner
	input  inputQueue
	frames *frameSink
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Model is the Bubble Tea model for a single snake game.
type Model struct {
	s       *session
	keys    KeyMap
	help    help.Model
	current frame
	width   int
	height  int

	finished bool
	err      error
}

// NewModel creates a model whose runner stops when ctx is cancelled.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	theme, err := opts.Config.Theme.Resolve()
	if err != nil {
		return Model{}, fmt.Errorf("invalid theme: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := snake.NewWithSeed(seed)
	game.SetTheme(theme)

	ctx, cancel := context.WithCancel(ctx)
	s := &session{
		game:   game,
		runner: loop.NewRunner(game, opts.Config.Runtime(seed), logger.With("seed", seed)),
		input:  newInputQueue(inputBuffer),
		frames: newFrameSink(),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	// Draw the starting position before the first tick
	s.frames.Render(game)

	return Model{
		s:       s,
		keys:    NewKeyMap(opts.Config.Keys),
		help:    help.New(),
		current: s.frames.frame(),
	}, nil
}

// Init starts the runner and begins listening for frames.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.run(), m.s.frames.waitForFrame(m.s.done))
}

func (m Model) run() tea.Cmd {
	s := m.s
	return func() tea.Msg {
		err := s.runner.Run(s.ctx, s.input, s.frames)
		close(s.done)
		return runnerDoneMsg{err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.current = m.s.frames.frame()
		return m, m.s.frames.waitForFrame(m.s.done)

	case runnerDoneMsg:
		return m.handleDone(msg)
	}

	return m, nil
}

// handleKey forwards mapped symbols to the runner's input queue.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sym := m.keys.Symbol(msg)
	if sym == core.SymbolNone {
		return m, nil
	}
	if m.finished {
		if sym == core.SymbolQuit {
			return m, tea.Quit
		}
		return m, nil
	}

	if !m.s.input.offer(sym) {
		if sym == core.SymbolQuit {
			m.s.cancel()
			return m, nil
		}
		m.s.logger.Debug("input dropped", "symbol", sym)
	}
	return m, nil
}

func (m Model) handleDone(msg runnerDoneMsg) (tea.Model, tea.Cmd) {
	m.finished = true
	m.current = m.s.frames.frame()
	m.s.cancel()

	switch {
	case msg.err == nil, errors.Is(msg.err, loop.ErrQuit), errors.Is(msg.err, context.Canceled):
	default:
		m.err = msg.err
	}
	return m, tea.Quit
}

// View renders the board, the stats panel and the help line.
func (m Model) View() string {
	if m.width > 0 && (m.width < minWidth || m.height < minHeight) {
		return fmt.Sprintf("terminal too small: need %dx%d, have %dx%d\n", minWidth, minHeight, m.width, m.height)
	}

	var b strings.Builder
	if m.width >= minWidth+panelWidth() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.current.board, "  ", renderPanel(m.current.snap)))
	} else {
		b.WriteString(m.current.board)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	if m.finished {
		b.WriteString("\n")
	}
	return b.String()
}

func panelWidth() int {
	return lipgloss.Width(renderPanel(snake.Snapshot{})) + 2
}

// Finished reports whether the runner has returned.
func (m Model) Finished() bool {
	return m.finished
}

// Err returns the runner error that ended the session, if any.
// Quitting and cancellation are not errors.
func (m Model) Err() error {
	return m.err
}

// Snapshot returns the game state shown by the last frame.
func (m Model) Snapshot() snake.Snapshot {
	return m.current.snap
}

// Run plays one game in the current terminal. The final frame stays on
// screen after the program exits.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	m, err := NewModel(ctx, opts)
	if err != nil {
		return err
	}
	defer m.s.cancel()

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run program: %w", err)
	}

	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
