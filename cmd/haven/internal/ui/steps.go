package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the user quits a step run
var ErrInterrupted = errors.New("interrupted")

// Step is one unit of work shown in a step run
type Step struct {
	Name string
	Run  func() error
}

// StepStatus tracks a step through the run
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepDone
	StepFailed
)

type stepState struct {
	Step
	Status  StepStatus
	Err     error
	Elapsed time.Duration
}

type stepDoneMsg struct {
	index   int
	err     error
	elapsed time.Duration
}

// StepsModel runs steps one after another behind a spinner
type StepsModel struct {
	title   string
	steps   []stepState
	current int
	spinner spinner.Model
	err     error
	done    bool
}

// NewSteps creates a model that runs steps in order and stops at the first
// failure
func NewSteps(title string, steps []Step) StepsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	states := make([]stepState, len(steps))
	for i, st := range steps {
		states[i] = stepState{Step: st}
	}
	return StepsModel{title: title, steps: states, spinner: s}
}

// Err is the failure that ended the run, if any
func (m StepsModel) Err() error {
	return m.err
}

// Done reports whether the run finished
func (m StepsModel) Done() bool {
	return m.done
}

// Status returns the status of step i
func (m StepsModel) Status(i int) StepStatus {
	return m.steps[i].Status
}

// Init initializes the model
func (m StepsModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}
	m.steps[0].Status = StepRunning
	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

func (m StepsModel) runStep(i int) tea.Cmd {
	run := m.steps[i].Run
	return func() tea.Msg {
		start := time.Now()
		err := run()
		return stepDoneMsg{index: i, err: err, elapsed: time.Since(start)}
	}
}

// Update handles spinner ticks, finished steps and ctrl+c
func (m StepsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrInterrupted
			m.done = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		st := &m.steps[msg.index]
		st.Elapsed = msg.elapsed
		if msg.err != nil {
			st.Status = StepFailed
			st.Err = msg.err
			m.err = fmt.Errorf("%s: %w", st.Name, msg.err)
			m.done = true
			return m, tea.Quit
		}
		st.Status = StepDone
		m.current = msg.index + 1
		if m.current >= len(m.steps) {
			m.done = true
			return m, tea.Quit
		}
		m.steps[m.current].Status = StepRunning
		return m, m.runStep(m.current)
	}
	return m, nil
}

// View renders one line per step
func (m StepsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	for _, st := range m.steps {
		switch st.Status {
		case StepPending:
			b.WriteString(mutedStyle.Render("○ " + st.Name))
		case StepRunning:
			b.WriteString(m.spinner.View() + " " + st.Name)
		case StepDone:
			b.WriteString(successStyle.Render("✓") + " " + st.Name + mutedStyle.Render(" "+st.Elapsed.Round(time.Millisecond).String()))
		case StepFailed:
			b.WriteString(errorStyle.Render("✗ "+st.Name) + "\n  " + errorStyle.Render(st.Err.Error()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RunSteps executes steps. With plain set, or when no terminal is attached,
// progress goes to logf instead of a spinner.
func RunSteps(title string, steps []Step, plain bool, logf func(format string, args ...interface{})) error {
	if plain {
		logf("%s", title)
		for _, st := range steps {
			start := time.Now()
			if err := st.Run(); err != nil {
				return fmt.Errorf("%s: %w", st.Name, err)
			}
			logf("  %s (%s)", st.Name, time.Since(start).Round(time.Millisecond))
		}
		return nil
	}

	final, err := tea.NewProgram(NewSteps(title, steps)).Run()
	if err != nil {
		return err
	}
	return final.(StepsModel).Err()
}
