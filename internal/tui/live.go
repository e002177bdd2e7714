package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbit/internal/celestial"
	"github.com/san-kum/orbit/internal/sim"
	"github.com/san-kum/orbit/internal/viz"
)

const (
	canvasWidth    = 80
	canvasHeight   = 24
	historyCap     = 240
	framesPerSec   = 30
	defaultStepsPF = 24 // integration steps per rendered frame
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSec, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the live orbit view: it integrates a fixed number of steps per
// frame and renders trails, conservation diagnostics and an energy-error
// sparkline.
type Model struct {
	sys        *celestial.System
	integrator sim.Integrator
	dt         float64
	stepsPF    int
	spanAU     float64
	canvas     *viz.Canvas

	running bool
	runErr  error

	driftHistory []float64
}

func NewModel(sys *celestial.System, integrator sim.Integrator, dt, spanAU float64) Model {
	return Model{
		sys:          sys,
		integrator:   integrator,
		dt:           dt,
		stepsPF:      defaultStepsPF,
		spanAU:       spanAU,
		canvas:       viz.NewCanvas(canvasWidth, canvasHeight),
		running:      true,
		driftHistory: make([]float64, 0, historyCap),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.stepsPF *= 2
		case "-":
			if m.stepsPF > 1 {
				m.stepsPF /= 2
			}
		case "[":
			m.spanAU *= 2
		case "]":
			m.spanAU /= 2
		}
		return m, nil

	case TickMsg:
		if m.running && m.runErr == nil {
			for i := 0; i < m.stepsPF; i++ {
				if err := m.integrator.Step(m.sys, m.dt); err != nil {
					m.runErr = err
					m.running = false
					break
				}
				if m.sys.Steps()%sim.DefaultSampleEvery == 0 {
					m.sys.SampleTrajectories()
				}
			}
			m.driftHistory = append(m.driftHistory, m.sys.RelativeEnergyError())
			if len(m.driftHistory) > historyCap {
				m.driftHistory = m.driftHistory[1:]
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawSystem(m.sys, m.spanAU)

	header := viz.HeaderStyle.Render("orbit live")

	status := viz.StatusRunning.Render("RUNNING")
	if m.runErr != nil {
		status = viz.WarnStyle.Render(fmt.Sprintf("ABORTED: %v", m.runErr))
	} else if !m.running {
		status = viz.StatusPaused.Render("PAUSED")
	}

	_, l := m.sys.AngularMomentum()
	stats := lipgloss.JoinVertical(lipgloss.Left,
		status,
		"",
		statLine("elapsed", fmt.Sprintf("%.3f yr", m.sys.Time()/celestial.Year)),
		statLine("steps", fmt.Sprintf("%d", m.sys.Steps())),
		statLine("bodies", fmt.Sprintf("%d", m.sys.Len())),
		statLine("span", fmt.Sprintf("%.2f AU", m.spanAU)),
		statLine("dE/E₀", fmt.Sprintf("%.3e", m.sys.RelativeEnergyError())),
		statLine("|L|", fmt.Sprintf("%.6e", l)),
		statLine("steps/frame", fmt.Sprintf("%d", m.stepsPF)),
	)

	var graph string
	if len(m.driftHistory) > 1 {
		graph = asciigraph.Plot(m.driftHistory,
			asciigraph.Height(5),
			asciigraph.Width(canvasWidth),
			asciigraph.Caption("relative energy error"),
		)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		viz.CanvasStyle.Render(m.canvas.String()),
		viz.StatsStyle.Render(stats),
	)

	help := viz.HelpStyle.Render("space pause · +/- speed · [/] zoom · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, graph, help)
}

func statLine(label, value string) string {
	return viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value)
}

// RunLive starts the interactive view and blocks until it exits.
func RunLive(sys *celestial.System, integrator sim.Integrator, dt, spanAU float64) error {
	p := tea.NewProgram(NewModel(sys, integrator, dt, spanAU))
	_, err := p.Run()
	return err
}
