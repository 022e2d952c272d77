package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

type expenseState int

const (
	expenseStateBrowse expenseState = iota
	expenseStateNew
)

type ExpenseModel struct {
	CommonModel
	svc *expense.Service

	state    expenseState
	month    period.Month
	table    table.Model
	expenses []*expense.Expense
	form     *huh.Form

	input   *expenseInput
	loading bool
	err     error
	status  string
}

type expenseInput struct {
	date   string
	reason string
	amount string
}

func NewExpenseModel(svc *expense.Service, actor string) ExpenseModel {
	return ExpenseModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		month:       period.Of(time.Now()),
		loading:     true,
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Reason", Width: 40},
			{Title: "Amount", Width: 10},
			{Title: "User", Width: 12},
		}),
	}
}

func (m ExpenseModel) Title() string { return "Expenses" }

func (m ExpenseModel) ShortHelp() string {
	if m.state == expenseStateNew {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new expense | [ ]: month | r: refresh"
}

func (m ExpenseModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadExpensesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.expenses = msg.expenses
		m.refreshTable()

		return m, nil

	case expenseSaveMsg:
		m.state = expenseStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Expense recorded."
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == expenseStateNew {
		return m.updateNew(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if next, ok := stepMonth(keyMsg.String(), m.month); ok {
			m.month = next
			m.loading = true

			return m, m.loadCmd()
		}

		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterNewMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ExpenseModel) enterNewMode() (tea.Model, tea.Cmd) {
	in := &expenseInput{date: FormatDate(time.Now())}
	m.input = in

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&in.date).
				Validate(func(s string) error {
					if _, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.Local); err != nil {
						return errors.New("date must be YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("reason").
				Title("Reason").
				Value(&in.reason).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("reason cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&in.amount).
				Validate(func(s string) error {
					cents, err := money.Parse(s)
					if err != nil || cents <= 0 {
						return errors.New("amount must be greater than zero")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expenseStateNew
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpenseModel) updateNew(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = expenseStateBrowse
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

	return m, m.saveCmd()
}

func (m *ExpenseModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))
	for _, e := range m.expenses {
		rows = append(rows, table.Row{
			FormatDate(e.Date),
			e.Reason,
			FormatAmount(e.Amount),
			e.User,
		})
	}

	m.table.SetRows(rows)
}

func (m ExpenseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Month: %s   Total: %s",
		activeStyle(m.month.String()), FormatAmount(expense.Total(m.expenses)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.state == expenseStateNew && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Expense\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadExpensesMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m ExpenseModel) loadCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := m.svc.List(ctx, expense.ListFilter{Month: &month})

		return loadExpensesMsg{expenses: expenses, err: err}
	}
}

type expenseSaveMsg struct {
	err error
}

func (m ExpenseModel) saveCmd() tea.Cmd {
	date, _ := time.ParseInLocation(time.DateOnly, strings.TrimSpace(m.input.date), time.Local)
	amount, _ := money.Parse(m.input.amount)

	params := expense.CreateParams{
		Date:   &date,
		Reason: m.input.reason,
		Amount: amount,
		Actor:  m.Actor,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Create(ctx, params)

		return expenseSaveMsg{err: err}
	}
}
