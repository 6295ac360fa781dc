package table

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/pkg/errors"

	nt "upnext/entity"
	"upnext/message"
	"upnext/style"
)

// Todo: horizontal scroll when columns overflow the panel width

const (
	headerHeight = 2
)

// TablePanel shows the library listing and tracks the selected row
type TablePanel struct {
	selected int // Position (0 to len(items)-1) of selected item
	offset   int // Position of first item shown

	width  int
	height int

	columns []nt.Column
	items   []nt.Item
	table   *table.Table
}

func NewTablePanel(columns []nt.Column) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	pnl := TablePanel{table: lgt}
	pnl = pnl.setColumns(columns)

	return pnl
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl = pnl.scroll()

	case ColumnsMsg:
		pnl = pnl.setColumns(msg.Columns)

	case ItemsMsg:
		id, err := pnl.SelectedId()

		pnl.items = msg.Items
		pnl.selected = 0
		if err == nil {
			for idx, item := range pnl.items {
				if item.Id == id {
					pnl.selected = idx
					break
				}
			}
		}
		pnl = pnl.scroll()
		return pnl, pnl.selectedCmd()

	case ResetMsg:
		pnl.selected = 0
		pnl.offset = 0
		return pnl, pnl.selectedCmd()

	case tea.KeyPressMsg:
		pageSize := pnl.PageSize()
		last := len(pnl.items) - 1
		before := pnl.selected

		switch msg.String() {
		case "up", "k":
			if pnl.selected > 0 {
				pnl.selected--
			}

		case "down", "j":
			if pnl.selected < last {
				pnl.selected++
			}

		case "pgup", "ctrl+u":
			pnl.selected = max(pnl.selected-pageSize, 0)

		case "pgdown", "ctrl+d":
			pnl.selected = max(min(pnl.selected+pageSize, last), 0)

		case "g", "home":
			pnl.selected = 0

		case "G", "end":
			pnl.selected = max(last, 0)

		case "enter", "right", "l":
			id, err := pnl.SelectedId()
			if err != nil {
				return pnl, nil
			}
			return pnl, message.OpenCmd(id)
		}

		pnl = pnl.scroll()
		if pnl.selected != before {
			return pnl, pnl.selectedCmd()
		}
	}

	return pnl, nil
}

// Render renders the visible page of the listing
func (pnl TablePanel) Render() string {

	pnl.table.StyleFunc(style.RowStyler(pnl.selected - pnl.offset))

	pnl.table.ClearRows()
	for _, item := range pnl.page() {
		pnl.table.Row(pnl.row(item)...)
	}

	return pnl.table.String()
}

// SelectedId returns the id of the selected item
func (pnl TablePanel) SelectedId() (id string, err error) {

	ln := len(pnl.items)
	if ln == 0 || pnl.selected >= ln {
		err = errors.Errorf("index %d is out of bounds of %d items", pnl.selected, ln)
		return
	}

	id = pnl.items[pnl.selected].Id
	return
}

// Selected returns the 1-indexed row of the selection and the number of rows
func (pnl TablePanel) Selected() (row, total int) {

	total = len(pnl.items)
	if total == 0 {
		return
	}
	row = pnl.selected + 1
	return
}

// PageSize returns the number of rows that fit on panel
func (pnl TablePanel) PageSize() int {
	return max(pnl.height-headerHeight, 1)
}

// unexported

func (pnl TablePanel) selectedCmd() tea.Cmd {

	id, err := pnl.SelectedId()
	if err != nil {
		return nil
	}

	row := pnl.selected + 1
	return func() tea.Msg {
		return message.SelectedMsg{
			Row: row,
			Id:  id,
		}
	}
}

// scroll clamps the selection and moves the page to keep it visible
func (pnl TablePanel) scroll() TablePanel {

	pageSize := pnl.PageSize()

	pnl.selected = max(min(pnl.selected, len(pnl.items)-1), 0)

	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}
	pnl.offset = max(min(pnl.offset, len(pnl.items)-pageSize), 0)

	return pnl
}

func (pnl TablePanel) page() []nt.Item {

	if pnl.offset >= len(pnl.items) {
		return nil
	}
	end := min(pnl.offset+pnl.PageSize(), len(pnl.items))
	return pnl.items[pnl.offset:end]
}

func (pnl TablePanel) row(item nt.Item) []string {

	row := []string{}
	for _, col := range pnl.columns {
		row = append(row, cell(item, col))
	}
	return row
}

func (pnl TablePanel) setColumns(columns []nt.Column) TablePanel {

	shown := []nt.Column{}
	for _, col := range columns {
		if col.Hidden {
			continue
		}
		shown = append(shown, col)
	}

	var headers []string
	for _, col := range shown {
		padded := fmt.Sprintf("%-*s", col.Width+1, col.Field)
		headers = append(headers, padded)
	}

	pnl.table.Headers(headers...)
	pnl.columns = shown

	return pnl
}

// help

func cell(item nt.Item, col nt.Column) string {

	value := item.Field(col.Field)
	if col.Format == "stars" {
		value = style.Stars(item.Rating)
	}
	value = truncate(value, col.Width)

	switch col.Field {
	case "type":
		return style.Tint(style.TypeColors, item.Type, value)
	case "status":
		return style.Tint(style.StatusColors, item.Status, value)
	}
	return value
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width < 1 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
