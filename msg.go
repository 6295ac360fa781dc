package upnext

// searchMsg fires when search input has settled
type searchMsg struct {
	seq int
}

// savedMsg reports preferences were written
type savedMsg struct {
	err error
}
