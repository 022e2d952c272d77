package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

type CollectionModel struct {
	CommonModel
	svc *collection.Service

	month   period.Month
	table   table.Model
	items   []*collection.Item
	summary *collection.Summary

	loading bool
	err     error
	status  string
}

func NewCollectionModel(svc *collection.Service, actor string) CollectionModel {
	return CollectionModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		month:       period.Of(time.Now()),
		loading:     true,
		table: newTable([]table.Column{
			{Title: "Client", Width: 30},
			{Title: "Zone", Width: 12},
			{Title: "Units", Width: 6},
			{Title: "Amount", Width: 10},
			{Title: "Paid", Width: 6},
			{Title: "By", Width: 12},
		}),
	}
}

func (m CollectionModel) Title() string { return "Collection" }

func (m CollectionModel) ShortHelp() string {
	return "Esc: back | Space: toggle paid | [ ]: month | f: rebuild | r: refresh"
}

func (m CollectionModel) Init() tea.Cmd {
	return m.loadCmd(false)
}

func (m CollectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCollectionMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.items = msg.items
		m.summary = msg.summary
		m.refreshTable()

		return m, nil

	case collectionPaidMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd(false)

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case tea.KeyMsg:
		if next, ok := stepMonth(msg.String(), m.month); ok {
			m.month = next
			m.loading = true

			return m, m.loadCmd(false)
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd(false)
		case "f":
			m.loading = true
			return m, m.loadCmd(true)
		case " ":
			return m, m.togglePaidCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *CollectionModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, it := range m.items {
		paid := "no"
		if it.Paid {
			paid = "yes"
		}

		rows = append(rows, table.Row{
			it.ClientName,
			it.ZoneID,
			fmt.Sprintf("%d", it.Units),
			FormatAmount(it.Amount),
			paid,
			it.PaidBy,
		})
	}

	m.table.SetRows(rows)
}

func (m CollectionModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading collection...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Month: %s", activeStyle(m.month.String()))

	if s := m.summary; s != nil {
		header += fmt.Sprintf("   Paid %d/%d   Collected %s of %s",
			s.Paid, s.Count, FormatAmount(s.Collected), FormatAmount(s.Amount))

		if s.Complete() {
			header += "   " + activeStyle("complete")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadCollectionMsg struct {
	items   []*collection.Item
	summary *collection.Summary
	err     error
}

func (m CollectionModel) loadCmd(force bool) tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		load := m.svc.Get
		if force {
			load = m.svc.Force
		}

		items, err := load(ctx, month)
		if err != nil {
			return loadCollectionMsg{err: err}
		}

		summary, err := m.svc.Summary(ctx, month)

		return loadCollectionMsg{items: items, summary: summary, err: err}
	}
}

type collectionPaidMsg struct {
	err error
}

func (m CollectionModel) togglePaidCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	it := m.items[idx]
	actor := m.Actor

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.SetPaid(ctx, it.ID, !it.Paid, actor)

		return collectionPaidMsg{err: err}
	}
}
