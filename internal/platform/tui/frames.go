package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// inputQueue buffers symbols from the UI goroutine for the runner's poller.
type inputQueue chan core.Symbol

func newInputQueue(size int) inputQueue {
	return make(inputQueue, size)
}

// Poll implements loop.InputSource.
func (q inputQueue) Poll() (core.Symbol, bool) {
	select {
	case sym := <-q:
		return sym, true
	default:
		return core.SymbolNone, false
	}
}

// offer enqueues sym and reports false if the queue is full.
func (q inputQueue) offer(sym core.Symbol) bool {
	select {
	case q <- sym:
		return true
	default:
		return false
	}
}

type frame struct {
	board string
	snap  snake.Snapshot
}

// frameMsg tells the model that a new frame is ready.
type frameMsg struct{}

// frameSink implements loop.Renderer. It draws on the tick goroutine and
// keeps only the latest frame; the UI picks it up after a notification.
type frameSink struct {
	screen *core.Screen

	mu     sync.Mutex
	latest frame

	ready chan struct{}
}

func newFrameSink() *frameSink {
	return &frameSink{
		screen: core.NewScreen(snake.CanvasWidth, snake.CanvasHeight),
		ready:  make(chan struct{}, 1),
	}
}

// Render implements loop.Renderer.
func (s *frameSink) Render(d loop.Drawable) {
	d.Render(s.screen)
	f := frame{board: RenderScreen(s.screen)}
	if g, ok := d.(interface{ Snapshot() snake.Snapshot }); ok {
		f.snap = g.Snapshot()
	}

	s.mu.Lock()
	s.latest = f
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
}

func (s *frameSink) frame() frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// waitForFrame blocks until a frame is ready or done is closed.
func (s *frameSink) waitForFrame(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.ready:
			return frameMsg{}
		case <-done:
			return nil
		}
	}
}
