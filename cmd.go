package upnext

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const searchDebounce = 200 * time.Millisecond

// debounceSearch waits for input to settle before applying it
func debounceSearch(seq int) tea.Cmd {

	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchMsg{seq: seq}
	})
}

// savePrefs captures the view and writes preferences
func (m Model) savePrefs() tea.Cmd {

	if m.Prefs == nil || m.PrefsPath == "" {
		return nil
	}

	m.Prefs.Capture(m.Library)
	prefs := *m.Prefs
	path := m.PrefsPath

	return func() tea.Msg {
		return savedMsg{err: prefs.Save(path)}
	}
}
