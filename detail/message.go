package detail

import nt "upnext/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg() {}
func (ItemMsg) isDetailMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// ItemMsg carries the item to show and where it sits in the listing
type ItemMsg struct {
	Item     nt.Item
	Position nt.Position
}
