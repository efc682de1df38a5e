// Package tui is the terminal dashboard served over SSH.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"
	"treasury-curve/internal/render"
	"treasury-curve/internal/service"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const refreshTimeout = 20 * time.Second

// CurveRefresher runs one fetch/normalize/slope pass.
type CurveRefresher interface {
	Refresh(ctx context.Context) (*domain.CurveSnapshot, error)
}

type curveMsg struct {
	snap *domain.CurveSnapshot
	err  error
}

type Model struct {
	ctx     context.Context
	curves  CurveRefresher
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	loading bool
	snap    *domain.CurveSnapshot
	err     error

	width, height int
}

// NewModel builds the dashboard. ctx bounds every refresh; pass the session
// context so a disconnect abandons an in-flight fetch.
func NewModel(ctx context.Context, curves CurveRefresher) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = slopeStyle

	return &Model{
		ctx:     ctx,
		curves:  curves,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
		loading: true,
		width:   80,
		height:  24,
	}
}

func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

func (m *Model) refresh() tea.Cmd {
	parent, curves := m.ctx, m.curves
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, refreshTimeout)
		defer cancel()
		snap, err := curves.Refresh(ctx)
		return curveMsg{snap: snap, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.refresh())
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case curveMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.snap = msg.snap
		} else if !errors.Is(msg.err, service.ErrRefreshInProgress) {
			// A failed fetch leaves nothing to show.
			m.snap = nil
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(render.Title))
	sb.WriteString("\n")

	if m.loading {
		sb.WriteString(m.spinner.View() + " Fetching Treasury quotes...\n\n")
	} else if m.err != nil {
		sb.WriteString(errorStyle.Render(errorText(m.err)) + "\n\n")
	}

	var series domain.MaturitySeries
	if m.snap != nil {
		series = m.snap.Series
	}
	sb.WriteString(RenderBars(series, m.width))
	sb.WriteString("\n\n")

	for _, line := range slopeLines(m.snap) {
		sb.WriteString(slopeStyle.Render(line) + "\n")
	}
	if m.snap != nil && !m.snap.FetchedAt.IsZero() {
		sb.WriteString(dimStyle.Render("Updated "+m.snap.FetchedAt.UTC().Format("2006-01-02 15:04:05 UTC")) + "\n")
	}

	sb.WriteString("\n" + m.help.View(m.keys))
	return sb.String()
}

func slopeLines(snap *domain.CurveSnapshot) []string {
	if snap == nil || len(snap.Slopes) == 0 {
		return []string{curve.FormatSlope(snap.PrimarySlope())}
	}
	lines := make([]string, 0, len(snap.Slopes))
	for _, s := range snap.Slopes {
		lines = append(lines, curve.SlopeLine(s))
	}
	return lines
}

func errorText(err error) string {
	if errors.Is(err, service.ErrRefreshInProgress) {
		return "A refresh is already running."
	}
	return "Market data is currently unavailable."
}
