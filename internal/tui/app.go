package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/ageguess/internal/agify"
	"github.com/f3rmion/ageguess/internal/clipboard"
	"github.com/f3rmion/ageguess/internal/config"
	"github.com/f3rmion/ageguess/internal/session"
	"github.com/f3rmion/ageguess/internal/tui/components"
)

// Predictor resolves the predicted age for a first name.
type Predictor interface {
	Predict(ctx context.Context, name string) (agify.Prediction, error)
}

// predictionMsg carries the outcome of the request issued for submit seq.
type predictionMsg struct {
	seq        int
	prediction agify.Prediction
	err        error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// AppModel is the root Bubble Tea model. It owns the single session.
type AppModel struct {
	predictor Predictor
	ctx       context.Context
	cancel    context.CancelFunc

	session session.Session
	// seq identifies the current attempt; outcomes of older attempts are dropped.
	seq int

	input      textinput.Model
	spinner    spinner.Model
	typewriter components.Typewriter
	keys       KeyMap
	help       help.Model

	// copyText writes to the system clipboard.
	copyText func(string) error
	copied   bool
	copyErr  error

	width  int
	height int
}

// NewApp creates the TUI application.
func NewApp(p Predictor, cfg config.Config) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Enter your first name"
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	ctx, cancel := context.WithCancel(context.Background())

	return AppModel{
		predictor:  p,
		ctx:        ctx,
		cancel:     cancel,
		session:    session.New(),
		input:      ti,
		spinner:    newSpinner(),
		typewriter: components.NewTypewriter(cfg.TypeDelay, cfg.TypeSpeed),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		copyText:   clipboard.Write,
	}
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Points),
		spinner.WithStyle(SpinnerStyle),
	)
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		return m.handleKey(msg)

	case predictionMsg:
		if msg.seq != m.seq {
			log.Printf("dropping stale prediction for attempt %d", msg.seq)
			return m, nil
		}
		if msg.err != nil {
			log.Printf("prediction failed: %v", msg.err)
			m.session = m.session.Fail(session.ErrorMessage)
			return m, nil
		}
		m.session = m.session.Resolve(msg.prediction.Age)
		if m.session.State() != session.StateSuccess {
			return m, nil
		}
		log.Printf("prediction for %q resolved: age=%d", m.session.Name, *m.session.Age)
		cmd := m.typewriter.Start(m.session.Sentence())
		return m, cmd

	case components.TickMsg:
		var cmd tea.Cmd
		m.typewriter, cmd = m.typewriter.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.session.State() != session.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		m.copyErr = nil
		return m, nil
	}

	if m.session.State() == session.StateForm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.State() {
	case session.StateForm:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Exit):
			return m.quit()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session = m.session.Input(m.input.Value())
		if m.input.Value() != m.session.Name {
			m.input.SetValue(m.session.Name)
			m.input.CursorEnd()
		}
		return m, cmd

	case session.StateSuccess:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Skip):
			m.typewriter.Skip()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m.copySentence()
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}

	default:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
	}
	return m, nil
}

// submit issues exactly one prediction request for the current name.
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	s, ok := m.session.Submit()
	if !ok {
		return m, nil
	}
	m.session = s
	m.seq++
	m.input.Blur()
	m.spinner = newSpinner()
	log.Printf("attempt %d: predicting age for %q", m.seq, s.Name)
	return m, tea.Batch(m.spinner.Tick, m.predict(m.seq, s.Name))
}

func (m AppModel) predict(seq int, name string) tea.Cmd {
	ctx, p := m.ctx, m.predictor
	return func() tea.Msg {
		prediction, err := p.Predict(ctx, name)
		return predictionMsg{seq: seq, prediction: prediction, err: err}
	}
}

// back discards the current attempt and returns to the form.
func (m AppModel) back() (tea.Model, tea.Cmd) {
	log.Printf("attempt %d: back from %s", m.seq, m.session.State())
	m.session = m.session.Back()
	m.seq++
	m.typewriter.Stop()
	m.copied = false
	m.copyErr = nil
	m.input.Reset()
	cmd := m.input.Focus()
	return m, cmd
}

func (m AppModel) copySentence() (tea.Model, tea.Cmd) {
	if err := m.copyText(m.session.Sentence()); err != nil {
		log.Printf("copy failed: %v", err)
		m.copied = false
		m.copyErr = err
	} else {
		m.copied = true
		m.copyErr = nil
	}
	return m, clearCopiedAfter(2 * time.Second)
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

// View renders the UI
func (m AppModel) View() string {
	state := m.session.State()

	var content string
	switch state {
	case session.StateForm:
		content = m.renderForm()
	case session.StateLoading:
		content = m.renderLoading()
	case session.StateSuccess:
		content = m.renderSuccess()
	case session.StateError:
		content = m.renderError()
	}

	helpView := HelpStyle.Render(m.help.View(stateKeys{keys: m.keys, state: state}))
	return ContentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content, helpView))
}
