package table

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "upnext/entity"
	"upnext/message"
)

func key(str string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(str)[0], Text: str}
}

func listing(count int) []nt.Item {

	items := []nt.Item{}
	for i := range count {
		items = append(items, nt.Item{
			Id:     fmt.Sprintf("id%02d", i),
			Title:  fmt.Sprintf("Title %02d", i),
			Type:   nt.TypeBook,
			Status: nt.StatusCompleted,
			Rating: i%5 + 1,
		})
	}
	return items
}

func panel(t *testing.T, count, height int) TablePanel {
	t.Helper()

	pnl := NewTablePanel(nt.DefaultColumns)
	pnl, _ = pnl.Update(SizeMsg{Width: 120, Height: height})
	pnl, cmd := pnl.Update(ItemsMsg{Items: listing(count)})
	if count > 0 {
		require.NotNil(t, cmd)
		assert.Equal(t, message.SelectedMsg{Row: 1, Id: "id00"}, cmd())
	}
	return pnl
}

func TestNavigation(t *testing.T) {
	pnl := panel(t, 20, 7) // five rows a page

	pnl, cmd := pnl.Update(key("j"))
	require.NotNil(t, cmd)
	assert.Equal(t, message.SelectedMsg{Row: 2, Id: "id01"}, cmd())

	pnl, _ = pnl.Update(key("G"))
	row, total := pnl.Selected()
	assert.Equal(t, 20, row)
	assert.Equal(t, 20, total)
	assert.Equal(t, 15, pnl.offset)

	pnl, cmd = pnl.Update(key("j"))
	assert.Nil(t, cmd)

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl})
	assert.Equal(t, 14, pnl.selected)
	assert.Equal(t, 14, pnl.offset)

	pnl, _ = pnl.Update(key("g"))
	assert.Equal(t, 0, pnl.selected)
	assert.Equal(t, 0, pnl.offset)

	pnl, cmd = pnl.Update(key("k"))
	assert.Nil(t, cmd)
}

func TestOpen(t *testing.T) {
	pnl := panel(t, 3, 10)

	pnl, _ = pnl.Update(key("j"))
	_, cmd := pnl.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, message.OpenMsg{Id: "id01"}, cmd())

	empty := panel(t, 0, 10)
	_, cmd = empty.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestItemsKeepSelection(t *testing.T) {
	pnl := panel(t, 10, 7)

	for range 6 {
		pnl, _ = pnl.Update(key("j"))
	}
	id, err := pnl.SelectedId()
	require.NoError(t, err)
	assert.Equal(t, "id06", id)

	// listing narrowed, selected item still present
	items := listing(10)[4:8]
	pnl, cmd := pnl.Update(ItemsMsg{Items: items})
	require.NotNil(t, cmd)
	assert.Equal(t, message.SelectedMsg{Row: 3, Id: "id06"}, cmd())

	// selected item gone, back to the top
	pnl, cmd = pnl.Update(ItemsMsg{Items: listing(2)})
	require.NotNil(t, cmd)
	assert.Equal(t, message.SelectedMsg{Row: 1, Id: "id00"}, cmd())

	pnl, cmd = pnl.Update(ItemsMsg{Items: nil})
	assert.Nil(t, cmd)
	_, err = pnl.SelectedId()
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	pnl := panel(t, 10, 5) // three rows a page

	out := pnl.Render()
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "Title 00")
	assert.Contains(t, out, "Title 02")
	assert.NotContains(t, out, "Title 03")
	assert.Contains(t, out, "★☆☆☆☆")

	pnl, _ = pnl.Update(ColumnsMsg{Columns: []nt.Column{{Field: "title", Width: 5}, {Field: "type", Width: 4, Hidden: true}}})
	out = pnl.Render()
	assert.Contains(t, out, "Titl")
	assert.NotContains(t, out, "Book")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "★★★★★", truncate("★★★★★", 5))
	assert.Contains(t, truncate("a longer title", 6), "a lon")
	assert.NotContains(t, truncate("a longer title", 6), "a long")
}
