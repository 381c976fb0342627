package main

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/os-handle/track"
)

// eventCounter counts lifecycle events flowing through the tracker.
type eventCounter struct {
	n atomic.Int64
}

func (c *eventCounter) OnHandleEvent(track.Event) {
	c.n.Add(1)
}

type inspectorModel struct {
	workload *workload
	events   *eventCounter
	stats    []track.Stat
	spin     spinner.Model
	started  time.Time
	workers  int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newInspectorModel(workers int) *inspectorModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	counter := &eventCounter{}
	track.Default().Subscribe(counter)

	return &inspectorModel{
		workload: startWorkload(workers),
		events:   counter,
		spin:     sp,
		started:  time.Now(),
		workers:  workers,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tick())
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.workload.shutdown()
			track.Default().Unsubscribe(m.events)
			return m, tea.Quit
		}

	case tickMsg:
		m.stats = track.Default().Stats()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("handletop"))
	b.WriteString(fmt.Sprintf(" %s %d workers, up %s\n\n",
		m.spin.View(), m.workers, time.Since(m.started).Truncate(time.Second)))

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %8s %8s %8s", "CATEGORY", "LIVE", "TOTAL", "CLOSED")))
	b.WriteString("\n")

	live := 0
	for _, s := range m.stats {
		line := fmt.Sprintf("%-14s %8d %8d %8d", s.Category, s.Live, s.Total, s.Released)
		if s.Live > 0 {
			b.WriteString(liveStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
		live += s.Live
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d live handle(s), %d lifecycle event(s)\n\n",
		live, m.events.n.Load()))
	b.WriteString(helpStyle.Render("q quit"))

	return b.String()
}

func runInteractive(workers int) error {
	p := tea.NewProgram(newInspectorModel(workers), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
