package upnext

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"upnext/detail"
	nt "upnext/entity"
	"upnext/input"
	"upnext/message"
	"upnext/style"
	"upnext/table"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the library viewer TUI.
type Model struct {
	Library   *Library
	Prefs     *Prefs
	PrefsPath string
	Source    string

	logger      nt.Logger
	ctx         context.Context
	errorString string

	CurrentScreen Screen

	searching bool
	input     input.TextInput
	searchSeq int

	selectedRow int
	total       int

	TablePanel  table.TablePanel
	DetailPanel detail.DetailPanel

	Width  int
	Height int
}

// NewModel creates a new bt model over lib, showing prefs columns.
func NewModel(ctx context.Context, lib *Library, prefs *Prefs, lgr nt.Logger) Model {

	if prefs == nil {
		prefs = DefaultPrefs()
	}
	if lgr == nil {
		lgr = nt.NopLogger{}
	}

	model := Model{
		Library:       lib,
		Prefs:         prefs,
		logger:        lgr,
		ctx:           ctx,
		CurrentScreen: TableScreen,
		input:         input.NewTextInput(lib.View().Search, 0),
		TablePanel:    table.NewTablePanel(prefs.Columns),
		DetailPanel:   detail.NewDetailPanel(),
	}

	model, _ = model.refresh()
	return model
}

func (m Model) Init() tea.Cmd {

	_, cmd := m.refresh()
	return cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case searchMsg:
		if msg.seq != m.searchSeq {
			return m, nil // superseded by later input
		}
		m.Library.SetSearch(m.input.Value())
		return m.refresh()

	case savedMsg:
		if msg.err != nil {
			m.logger.Error(m.ctx, "failed to save prefs", msg.err)
		}
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.SelectedMsg:
		m.selectedRow = min(msg.Row, m.total)
		return m, nil

	case message.OpenMsg:
		return m.switchToDetail(msg.Id)

	case message.StepMsg:
		id, ok := m.Library.Neighbor(msg.Id, msg.Step)
		if !ok {
			return m, nil
		}
		return m.switchToDetail(id)

	case message.SmartFilterMsg:
		if !m.Library.SmartFilter(msg.Key, msg.Value) {
			return m, message.ErrorCmd(errors.Errorf("cannot filter on %s %s", msg.Key, msg.Value))
		}
		m.input = m.input.SetValue(m.Library.View().Search)

		var cmd tea.Cmd
		m, cmd = m.switchToTable()
		return m, tea.Batch(cmd, func() tea.Msg { return table.ResetMsg{} })

	case tea.KeyPressMsg:
		m.errorString = ""

		if m.searching {
			return m.editSearch(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Sequence(m.savePrefs(), tea.Quit)

		case "esc", "backspace":
			if m.CurrentScreen != TableScreen {
				return m.switchToTable()
			}
			if msg.String() == "esc" {
				return m, tea.Sequence(m.savePrefs(), tea.Quit)
			}
			return m, nil

		case "/":
			if m.CurrentScreen == TableScreen {
				m.searching = true
				return m, nil
			}
		}

		if m.CurrentScreen == TableScreen && m.Library.FilterKey(msg.String()) {
			return m.refresh()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd1, cmd2 tea.Cmd
		m.TablePanel, cmd1 = m.TablePanel.Update(table.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		m.DetailPanel, cmd2 = m.DetailPanel.Update(detail.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		return m, tea.Batch(cmd1, cmd2)
	}

	// Broadcast to child panels, only the focused one acts on keys
	var cmd1, cmd2 tea.Cmd
	if m.CurrentScreen == TableScreen {
		m.TablePanel, cmd1 = m.TablePanel.Update(msg)
	} else {
		m.DetailPanel, cmd2 = m.DetailPanel.Update(msg)
	}
	return m, tea.Batch(cmd1, cmd2)
}

func (m Model) View() tea.View {

	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.DetailPanel.Render()
	default:
		screenContent = m.TablePanel.Render()
	}
	screenContent = lipgloss.NewStyle().
		Height(m.Height - footerHeight).
		MaxHeight(m.Height - footerHeight).
		Render(screenContent)

	content := lipgloss.JoinVertical(lipgloss.Left,
		screenContent,
		RenderSearch(m.input.Render(m.searching), m.searching),
		m.footer(),
	)

	view := tea.NewView(content)
	view.AltScreen = true
	return view
}

// unexported

// refresh recomputes the listing and hands it to the panels
func (m Model) refresh() (Model, tea.Cmd) {

	items := m.Library.FilteredSortedItems()

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(table.ItemsMsg{Items: items})

	m.total = len(items)
	m.selectedRow = min(m.selectedRow, m.total)

	if id := m.DetailPanel.ItemId(); id != "" {
		item, ok := m.Library.Item(id)
		if ok {
			m.DetailPanel, _ = m.DetailPanel.Update(detail.ItemMsg{
				Item:     item,
				Position: m.Library.PositionOf(id),
			})
		}
	}

	return m, cmd
}

func (m Model) footer() string {

	if m.errorString != "" {
		return style.ErrorStyle.Render(m.errorString)
	}
	return RenderFooter(m.selectedRow, m.total, Summary(m.Library.View()), m.Source, m.Width)
}

func (m Model) editSearch(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.searchSeq++
		m.Library.SetSearch(m.input.Value())
		return m.refresh()

	case "ctrl+c":
		return m, tea.Sequence(m.savePrefs(), tea.Quit)
	}

	var changed bool
	m.input, changed = m.input.Update(msg)
	if !changed {
		return m, nil
	}

	m.searchSeq++
	return m, debounceSearch(m.searchSeq)
}

func (m Model) switchToDetail(id string) (tea.Model, tea.Cmd) {

	item, ok := m.Library.Item(id)
	if !ok {
		return m, message.ErrorCmd(errors.Errorf("no item with id %s", id))
	}

	m.CurrentScreen = DetailScreen
	m.DetailPanel.Focused = true
	m.DetailPanel, _ = m.DetailPanel.Update(detail.ItemMsg{
		Item:     item,
		Position: m.Library.PositionOf(id),
	})
	return m, nil
}

func (m Model) switchToTable() (Model, tea.Cmd) {

	m.CurrentScreen = TableScreen
	m.DetailPanel.Focused = false
	return m.refresh()
}
