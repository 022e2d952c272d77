package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
)

type inventoryState int

const (
	inventoryStateBrowse inventoryState = iota
	inventoryStateAdd
)

type InventoryModel struct {
	CommonModel
	svc *inventory.Service

	state  inventoryState
	table  table.Model
	groups []inventory.Group
	form   *huh.Form

	input   *inventoryInput
	loading bool
	err     error
	status  string
}

type inventoryInput struct {
	label string
	qty   string
	price string
}

func NewInventoryModel(svc *inventory.Service, actor string) InventoryModel {
	return InventoryModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		loading:     true,
		table: newTable([]table.Column{
			{Title: "Equipment", Width: 30},
			{Title: "Available", Width: 10},
			{Title: "Assigned", Width: 10},
			{Title: "Price", Width: 10},
			{Title: "Last", Width: 12},
		}),
	}
}

func (m InventoryModel) Title() string { return "Inventory" }

func (m InventoryModel) ShortHelp() string {
	if m.state == inventoryStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add units | r: refresh"
}

func (m InventoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInventoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.groups = msg.groups
		m.refreshTable()

		return m, nil

	case inventorySaveMsg:
		m.status = msg.status
		m.state = inventoryStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == inventoryStateAdd {
		return m.updateAdd(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InventoryModel) enterAddMode() (tea.Model, tea.Cmd) {
	in := &inventoryInput{qty: "1"}

	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.groups) {
		in.label = m.groups[idx].Display
	}

	m.input = in

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("label").
				Title("Equipment").
				Value(&in.label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("label cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("qty").
				Title("Quantity").
				Value(&in.qty).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return errors.New("quantity must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("price").
				Title("Unit price").
				Description("Leave empty to keep the group price").
				Value(&in.price).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := money.Parse(s)
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = inventoryStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m InventoryModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = inventoryStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.addCmd()
}

func (m *InventoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.groups))
	for _, g := range m.groups {
		price := "-"
		if g.Price != nil {
			price = FormatAmount(*g.Price)
		}

		rows = append(rows, table.Row{
			g.Display,
			strconv.Itoa(g.Quantity),
			strconv.Itoa(g.Assigned),
			price,
			FormatDate(g.LastAt),
		})
	}

	m.table.SetRows(rows)
}

func (m InventoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading inventory...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	content := boxed(m.table.View())

	if m.state == inventoryStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Units\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadInventoryMsg struct {
	groups []inventory.Group
	err    error
}

func (m InventoryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		groups, err := m.svc.Groups(ctx)

		return loadInventoryMsg{groups: groups, err: err}
	}
}

type inventorySaveMsg struct {
	status string
}

func (m InventoryModel) addCmd() tea.Cmd {
	qty, _ := strconv.Atoi(strings.TrimSpace(m.input.qty))

	params := inventory.AddParams{
		Label: m.input.label,
		Qty:   qty,
		Actor: m.Actor,
	}

	if s := strings.TrimSpace(m.input.price); s != "" {
		price, _ := money.Parse(s)
		params.Price = &price
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		units, err := m.svc.AddEquipment(ctx, params)
		if err != nil {
			return inventorySaveMsg{status: fmt.Sprintf("Error saving: %v", err)}
		}

		return inventorySaveMsg{status: fmt.Sprintf("Added %d units of %s.", len(units), strings.TrimSpace(params.Label))}
	}
}
