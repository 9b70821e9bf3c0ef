// Package tui renders a live terminal view of an aggregate run.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

const historyLen = 240

// Stepper is the slice of a driver session the view needs: advance one
// step and report flattened state/output samples.
type Stepper interface {
	Step() ([]float64, []float64, error)
	Time() float64
}

type Model struct {
	name    string
	stepper Stepper
	dt      float64

	paused  bool
	err     error
	time    float64
	state   []float64
	outputs []float64
	history []float64 // first output series

	width  int
	height int
}

func NewLive(name string, stepper Stepper, dt float64) Model {
	return Model{
		name:    name,
		stepper: stepper,
		dt:      dt,
		history: make([]float64, 0, historyLen),
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.paused || m.err != nil {
			return m, tick()
		}
		// Advance enough substeps to keep wall time roughly real time.
		steps := int(0.033/m.dt) + 1
		for i := 0; i < steps; i++ {
			state, outputs, err := m.stepper.Step()
			if err != nil {
				m.err = err
				break
			}
			m.state = state
			m.outputs = outputs
		}
		m.time = m.stepper.Time()
		if len(m.outputs) > 0 {
			m.history = append(m.history, m.outputs[0])
			if len(m.history) > historyLen {
				m.history = m.history[len(m.history)-historyLen:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(fmt.Sprintf("narysim live — %s", m.name)))
	b.WriteString(dim.Render(fmt.Sprintf("   t=%.2f", m.time)))
	if m.paused {
		b.WriteString(yellow.Render("   [paused]"))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(red.Render("error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.history) > 1 {
		plotWidth := m.width - 12
		if plotWidth < 20 {
			plotWidth = 20
		}
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("output[0]"),
		)
		b.WriteString(panel.Render(graph))
		b.WriteString("\n")
	}

	if len(m.outputs) > 0 {
		parts := make([]string, len(m.outputs))
		for i, v := range m.outputs {
			parts[i] = green.Render(fmt.Sprintf("%8.3f", v))
		}
		b.WriteString(dim.Render("y: ") + strings.Join(parts, " ") + "\n")
	}
	if len(m.state) > 0 && len(m.state) <= 12 {
		parts := make([]string, len(m.state))
		for i, v := range m.state {
			parts[i] = white.Render(fmt.Sprintf("%8.3f", v))
		}
		b.WriteString(dim.Render("x: ") + strings.Join(parts, " ") + "\n")
	}

	b.WriteString("\n" + dim.Render("space pause · q quit") + "\n")
	return b.String()
}
