package table

import nt "upnext/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()    {}
func (ItemsMsg) isTableMsg()   {}
func (ColumnsMsg) isTableMsg() {}
func (ResetMsg) isTableMsg()   {}

type SizeMsg struct {
	Width  int
	Height int
}

// ItemsMsg carries a fresh listing
type ItemsMsg struct {
	Items []nt.Item
}

type ColumnsMsg struct {
	Columns []nt.Column
}

type ResetMsg struct{}
