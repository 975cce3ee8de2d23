package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhollis/trackledger/internal/reports"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ReportListView ViewState = iota
	TableView
)

// tableComputedMsg carries the result of an off-loop report computation.
type tableComputedMsg struct {
	name  string
	table *reports.Table
	err   error
}

// Model represents the TUI application state.
type Model struct {
	view       ViewState
	engine     *reports.Engine
	params     reports.Params
	width      int
	height     int
	reportList list.Model
	selected   string
	table      *reports.Table
	err        error
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model over the given engine and parameters.
func NewModel(engine *reports.Engine, params reports.Params) *Model {
	items := make([]list.Item, len(reports.Catalog()))
	for i, d := range reports.Catalog() {
		items[i] = reportItem{descriptor: d}
	}
	reportList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	reportList.Title = "Reports"

	return &Model{
		view:       ReportListView,
		engine:     engine,
		params:     params,
		reportList: reportList,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init implements tea.Model. The catalog is static, so there is nothing to
// fetch up front.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reportList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ReportListView:
			return m.handleReportListKeys(msg)
		case TableView:
			return m.handleTableKeys(msg)
		}

	case tableComputedMsg:
		m.selected = msg.name
		m.table = msg.table
		m.err = msg.err
		m.view = TableView
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ReportListView:
		return m.renderReportList()
	case TableView:
		return m.renderTable()
	default:
		return ""
	}
}

func (m *Model) handleReportListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.reportList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(reportItem); ok {
				return m, m.computeReport(item.descriptor.Name)
			}
		}
	}

	var cmd tea.Cmd
	m.reportList, cmd = m.reportList.Update(msg)
	return m, cmd
}

func (m *Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ReportListView
		m.table = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == ReportListView {
		m.reportList, cmd = m.reportList.Update(msg)
	}
	return m, cmd
}

func (m *Model) computeReport(name string) tea.Cmd {
	return func() tea.Msg {
		table, err := m.engine.Run(name, m.params)
		return tableComputedMsg{name: name, table: table, err: err}
	}
}

func (m *Model) renderReportList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.reportList.View(), helpView)
}

func (m *Model) renderTable() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	if m.err != nil {
		body := styles.err.Render(fmt.Sprintf("Error computing %s: %v", m.selected, m.err))
		return fmt.Sprintf("%s\n\n%s", body, helpView)
	}

	title := styles.title.Render(m.table.Title)
	body := renderTableBody(m.table)
	count := styles.help.Render(fmt.Sprintf("%d rows", len(m.table.Rows)))
	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, body, count, helpView)
}

// renderTableBody lays out the table with space-aligned columns, the header
// styled separately from the data rows.
func renderTableBody(table *reports.Table) string {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	layout := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(cells)-1 {
				cell += strings.Repeat(" ", widths[i]-len(cell))
			}
			parts[i] = cell
		}
		return strings.Join(parts, "  ")
	}

	var b strings.Builder
	b.WriteString(styles.header.Render(layout(table.Columns)))
	for _, row := range table.Rows {
		b.WriteString("\n" + layout(row))
	}
	return b.String()
}
