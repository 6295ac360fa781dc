package detail

import (
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	nt "upnext/entity"
	"upnext/message"
	"upnext/style"
)

// Todo: wrap long description and review text to panel width

const headerHeight = 2

// DetailPanel shows one item as json and steps through the listing
type DetailPanel struct {
	item     nt.Item
	position nt.Position

	contentLines []string // Rendered content split into lines (cached)

	// Display state
	Width        int
	height       int
	Focused      bool
	ScrollOffset int // Line offset for scrolling content
}

func NewDetailPanel() DetailPanel {
	return DetailPanel{position: nt.NoPosition}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case ItemMsg:
		if msg.Item.Id != pnl.item.Id {
			pnl.ScrollOffset = 0
		}
		pnl.item = msg.Item
		pnl.position = msg.Position
		pnl.computeContentLines()

	case SizeMsg:
		pnl.Width = msg.Width
		pnl.height = msg.Height
		pnl.ScrollOffset = 0

	case tea.KeyPressMsg:
		if !pnl.Focused || pnl.item.Id == "" {
			return pnl, nil
		}

		switch msg.String() {
		case "up", "k":
			if pnl.ScrollOffset > 0 {
				pnl.ScrollOffset--
			}

		case "down", "j":
			if len(pnl.contentLines) > pnl.viewHeight() {
				maxScroll := len(pnl.contentLines) - pnl.viewHeight()
				if pnl.ScrollOffset < maxScroll {
					pnl.ScrollOffset++
				}
			}

		case "n", "right":
			if pnl.position.HasNext {
				return pnl, message.StepCmd(pnl.item.Id, 1)
			}

		case "p", "left":
			if pnl.position.HasPrev {
				return pnl, message.StepCmd(pnl.item.Id, -1)
			}

		case "u":
			return pnl, smartFilter(nt.KeyUniverse, pnl.item.Universe)

		case "e":
			return pnl, smartFilter(nt.KeySeries, pnl.item.Series)

		case "a":
			return pnl, smartFilter(nt.KeyAuthor, first(pnl.item.Authors))

		case "t":
			return pnl, smartFilter(nt.KeyTag, first(pnl.item.Tags))

		case "y":
			return pnl, smartFilter(nt.KeyType, string(pnl.item.Type))
		}
	}

	return pnl, nil
}

// Render renders the detail view
func (pnl DetailPanel) Render() string {

	if pnl.contentLines == nil {
		return "No item selected"
	}

	visibleLines := pnl.contentLines[min(pnl.ScrollOffset, len(pnl.contentLines)):]
	if pnl.height > 0 && len(visibleLines) > pnl.viewHeight() {
		visibleLines = visibleLines[:pnl.viewHeight()]
	}

	return pnl.header() + "\n\n" + strings.Join(visibleLines, "\n")
}

// ItemId returns the id of the item shown
func (pnl DetailPanel) ItemId() string {
	return pnl.item.Id
}

// unexported

func (pnl DetailPanel) viewHeight() int {
	return max(pnl.height-headerHeight, 1)
}

func (pnl DetailPanel) header() string {

	prev := style.MutedStyle.Render("◀ p")
	if pnl.position.HasPrev {
		prev = "◀ p"
	}
	next := style.MutedStyle.Render("n ▶")
	if pnl.position.HasNext {
		next = "n ▶"
	}

	title := pnl.item.Title
	if title == "" {
		title = pnl.item.Id
	}
	if stars := style.Stars(pnl.item.Rating); stars != "" {
		title += "  " + stars
	}
	if label, ok := nt.RatingLabels[pnl.item.Rating]; ok {
		title += " " + style.MutedStyle.Render(label)
	}

	return prev + "  " + title + "  " + next
}

// computeContentLines renders the item as json and splits into lines
func (pnl *DetailPanel) computeContentLines() {

	data, err := compact(pnl.item)
	if err != nil {
		pnl.contentLines = []string{"Error preparing item: " + err.Error()}
		return
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err = encoder.Encode(data)
	if err != nil {
		pnl.contentLines = []string{"Error pretty-printing JSON: " + err.Error()}
		return
	}

	content := strings.TrimSuffix(buf.String(), "\n")
	pnl.contentLines = strings.Split(content, "\n")
}

// compact returns the item as a map without its empty fields
func compact(item nt.Item) (data map[string]any, err error) {

	raw, err := json.Marshal(item)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal item")
		return
	}

	data = map[string]any{}
	err = json.Unmarshal(raw, &data)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal item")
		return
	}

	for key, val := range data {
		switch val := val.(type) {
		case nil:
			delete(data, key)
		case string:
			if val == "" {
				delete(data, key)
			}
		case float64:
			if val == 0 {
				delete(data, key)
			}
		}
	}
	return
}

func smartFilter(key, value string) tea.Cmd {

	if value == "" {
		return nil
	}
	return message.SmartFilterCmd(key, value)
}

func first(strs []string) string {

	if len(strs) == 0 {
		return ""
	}
	return strs[0]
}
