package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// OpenCmd returns a command to open an item in detail
func OpenCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return OpenMsg{Id: id}
	}
}

// StepCmd returns a command to move step places through the listing
func StepCmd(id string, step int) tea.Cmd {
	return func() tea.Msg {
		return StepMsg{Id: id, Step: step}
	}
}

// SmartFilterCmd returns a command to search on key=value
func SmartFilterCmd(key, value string) tea.Cmd {
	return func() tea.Msg {
		return SmartFilterMsg{Key: key, Value: value}
	}
}
