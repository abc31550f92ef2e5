package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

// DatasetStartedMsg signals that a dataset load has begun.
type DatasetStartedMsg struct {
	Table string
}

// DatasetLoadedMsg signals that a dataset finished loading.
type DatasetLoadedMsg struct {
	Report gnafload.TableReport
}

// RunFinishedMsg signals that the whole run is over.
type RunFinishedMsg struct {
	Err error
}

// ProgressModel renders per-dataset load progress: a line per completed
// table and a spinner for the one in flight.
type ProgressModel struct {
	spinner    spinner.Model
	current    string
	loaded     []gnafload.TableReport
	finished   bool
	cancelling bool
	err        error
	cancel     func()
}

// NewProgressModel creates the progress display model. cancel is invoked
// when the user aborts with ctrl+c; it must stop the load whose progress
// is being displayed. The terminal is in raw mode while the display
// runs, so ctrl+c arrives here as a key event rather than a SIGINT.
func NewProgressModel(cancel func()) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return ProgressModel{spinner: s, cancel: cancel}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DatasetStartedMsg:
		m.current = msg.Table
		return m, nil
	case DatasetLoadedMsg:
		m.loaded = append(m.loaded, msg.Report)
		m.current = ""
		return m, nil
	case RunFinishedMsg:
		m.finished = true
		m.err = msg.Err
		m.current = ""
		return m, tea.Quit
	case tea.InterruptMsg:
		return m.abort(), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.abort(), nil
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// abort cancels the load. The display stays up until RunFinishedMsg
// arrives, so the user sees the cancellation take effect instead of a
// silently continuing background load.
func (m ProgressModel) abort() ProgressModel {
	if m.cancelling {
		return m
	}
	m.cancelling = true
	m.current = ""
	if m.cancel != nil {
		m.cancel()
	}
	return m
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	var out string
	for _, report := range m.loaded {
		out += SuccessStyle.Render(SymbolCheck) + " " +
			TableStyle.Render(fmt.Sprintf("%s: %d rows (%s)",
				report.Table, report.Rows, report.Duration.Round(time.Millisecond))) + "\n"
	}

	if m.finished {
		if m.err != nil {
			out += ErrorStyle.Render(SymbolCross+" load failed: "+m.err.Error()) + "\n"
		}
		return out
	}

	if m.cancelling {
		out += m.spinner.View() + " " + ErrorStyle.Render("cancelling, waiting for the load to stop") + "\n"
		return out
	}

	if m.current != "" {
		out += m.spinner.View() + " " + TableStyle.Render("loading "+m.current) + "\n"
	} else {
		out += m.spinner.View() + " " + TableStyle.Render("preparing") + "\n"
	}
	out += HelpStyle.Render("ctrl+c to abort")
	return out
}

// Loaded returns the reports rendered so far. Used by tests.
func (m ProgressModel) Loaded() []gnafload.TableReport {
	return m.loaded
}
