package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func step(name string, err error, ran *[]string) Step {
	return Step{Name: name, Run: func() error {
		*ran = append(*ran, name)
		return err
	}}
}

// drive feeds each step's result back into the model until it finishes
func drive(t *testing.T, m StepsModel) StepsModel {
	t.Helper()
	m.steps[0].Status = StepRunning
	cmd := m.runStep(0)
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		done, ok := msg.(stepDoneMsg)
		if !ok {
			break
		}
		var next tea.Model
		next, cmd = m.Update(done)
		m = next.(StepsModel)
		if m.Done() {
			break
		}
	}
	return m
}

func TestStepsRunInOrder(t *testing.T) {
	var ran []string
	m := drive(t, NewSteps("build", []Step{
		step("render", nil, &ran),
		step("compile", nil, &ran),
		step("copy", nil, &ran),
	}))

	if !m.Done() || m.Err() != nil {
		t.Fatalf("Done = %v, Err = %v, want finished without error", m.Done(), m.Err())
	}
	if got := strings.Join(ran, ","); got != "render,compile,copy" {
		t.Errorf("ran = %s, want render,compile,copy", got)
	}
	for i := range ran {
		if m.Status(i) != StepDone {
			t.Errorf("Status(%d) = %v, want StepDone", i, m.Status(i))
		}
	}
}

func TestStepsStopAtFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	m := drive(t, NewSteps("build", []Step{
		step("render", nil, &ran),
		step("compile", boom, &ran),
		step("copy", nil, &ran),
	}))

	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err = %v, want wrapping boom", m.Err())
	}
	if len(ran) != 2 {
		t.Errorf("ran = %v, want the third step skipped", ran)
	}
	if m.Status(1) != StepFailed || m.Status(2) != StepPending {
		t.Errorf("statuses = %v/%v, want failed/pending", m.Status(1), m.Status(2))
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("View should show the failure")
	}
}

func TestStepsInterrupt(t *testing.T) {
	m := NewSteps("build", []Step{{Name: "wait", Run: func() error { return nil }}})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if err := next.(StepsModel).Err(); !errors.Is(err, ErrInterrupted) {
		t.Errorf("Err = %v, want ErrInterrupted", err)
	}
}

func TestRunStepsPlain(t *testing.T) {
	var ran, logged []string
	err := RunSteps("build", []Step{step("a", nil, &ran), step("b", nil, &ran)}, true,
		func(format string, args ...interface{}) { logged = append(logged, format) })
	if err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	if len(ran) != 2 || len(logged) != 3 {
		t.Errorf("ran %d steps and logged %d lines, want 2 and 3", len(ran), len(logged))
	}
}

func TestReport(t *testing.T) {
	out := Report("doctor", []Row{
		{Name: "modal", OK: true, Detail: "active"},
		{Name: "parallax", OK: false, Detail: "missing #hero"},
	})
	for _, want := range []string{"modal", "parallax", "missing #hero", "1 of 2 active"} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q", want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
