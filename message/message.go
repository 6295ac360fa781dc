// Package message holds msgs passed between the library model and its panels.
package message

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// SelectedMsg signals the table selection moved
type SelectedMsg struct {
	Row int
	Id  string
}

// OpenMsg asks for an item to be shown in detail
type OpenMsg struct {
	Id string
}

// StepMsg asks for the item step places from Id in the listing
type StepMsg struct {
	Id   string
	Step int
}

// SmartFilterMsg asks for a clause to be appended to the search
type SmartFilterMsg struct {
	Key   string
	Value string
}
