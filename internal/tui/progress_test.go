package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

func TestProgressModel_DatasetLifecycle(t *testing.T) {
	var m tea.Model = NewProgressModel(nil)

	m, _ = m.Update(DatasetStartedMsg{Table: "gnaf_vic_locality"})
	view := m.View()
	assert.Contains(t, view, "loading gnaf_vic_locality")

	m, _ = m.Update(DatasetLoadedMsg{Report: gnafload.TableReport{
		Table:    "gnaf_vic_locality",
		Rows:     42,
		Duration: 120 * time.Millisecond,
	}})
	view = m.View()
	assert.Contains(t, view, "gnaf_vic_locality: 42 rows")

	pm, ok := m.(ProgressModel)
	require.True(t, ok)
	assert.Len(t, pm.Loaded(), 1)
}

func TestProgressModel_RunFinishedQuits(t *testing.T) {
	var m tea.Model = NewProgressModel(nil)

	m, cmd := m.Update(RunFinishedMsg{})
	require.NotNil(t, cmd)
	assert.NotContains(t, m.View(), "ctrl+c")
}

func TestProgressModel_RunFinishedWithError(t *testing.T) {
	var m tea.Model = NewProgressModel(nil)

	m, _ = m.Update(RunFinishedMsg{Err: errors.New("copy rejected")})
	assert.Contains(t, m.View(), "copy rejected")
}

func TestProgressModel_CtrlCCancelsRun(t *testing.T) {
	cancelled := false
	var m tea.Model = NewProgressModel(func() { cancelled = true })

	// The abort must cancel the load; the display stays up until the
	// run reports back, so no quit command is issued yet.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, cancelled)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "cancelling")

	// A second ctrl+c must not re-invoke cancel.
	cancelled = false
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, cancelled)

	// The cancelled run finishing is what tears the display down.
	_, cmd = m.Update(RunFinishedMsg{Err: errors.New("context canceled")})
	assert.NotNil(t, cmd)
}

func TestProgressModel_InterruptCancelsRun(t *testing.T) {
	cancelled := false
	var m tea.Model = NewProgressModel(func() { cancelled = true })

	m, cmd := m.Update(tea.InterruptMsg{})
	assert.True(t, cancelled)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "cancelling")
}
