package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/fuzzy-pick/internal/logging/events"
	"github.com/atomicstack/fuzzy-pick/internal/picker"
	"github.com/atomicstack/fuzzy-pick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Config describes user-provided application options.
type Config struct {
	Prompt     string
	Header     string
	Width      int
	Height     int
	ShowFooter bool
	Inline     bool
	Multi      bool
	Algorithm  string
	Threshold  float64
	Limit      int
	Verbose    bool
}

// NewSession builds the picker session described by cfg.
func NewSession(cfg Config, candidates []string) (*picker.Session, error) {
	scorer, err := picker.ScorerFor(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	filter := picker.NewFilter(
		picker.WithScorer(scorer),
		picker.WithThreshold(cfg.Threshold),
		picker.WithLimit(cfg.Limit),
	)
	return picker.NewSession(candidates, picker.WithFilter(filter), picker.WithMultiSelect(cfg.Multi)), nil
}

// NewModel builds the terminal model for a session and binds the two.
func NewModel(cfg Config, session *picker.Session) *ui.Model {
	model := ui.NewModel(ui.Options{
		Prompt:     cfg.Prompt,
		Header:     cfg.Header,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Multi:      session.MultiSelect(),
		Total:      session.Total(),
	})
	picker.Bind(session, model, model.Finish)
	return model
}

// Run bootstraps and executes the Bubble Tea program. The interface is drawn
// on stderr and keys are read from the controlling terminal, leaving stdin
// for the candidates and stdout for the result.
func Run(cfg Config, candidates []string) (picker.Outcome, error) {
	if len(candidates) == 0 {
		return picker.Cancelled(), nil
	}
	session, err := NewSession(cfg, candidates)
	if err != nil {
		return picker.Outcome{}, fmt.Errorf("build session: %w", err)
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stderr).ColorProfile())
	model := NewModel(cfg, session)

	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr), tea.WithInputTTY()}
	if !cfg.Inline {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return picker.Cancelled(), nil
	}
	if err != nil {
		return picker.Outcome{}, fmt.Errorf("run picker: %w", err)
	}
	out, ok := model.Outcome()
	if !ok {
		out = picker.Cancelled()
	}
	events.App.Exit(out.Kind.String(), len(out.Items))
	return out, nil
}
