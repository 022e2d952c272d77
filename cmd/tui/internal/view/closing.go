package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

type ClosingModel struct {
	CommonModel
	svc *closing.Service

	month   period.Month
	figures *closing.Figures
	form    *huh.Form
	confirm *bool

	loading bool
	err     error
	status  string
}

func NewClosingModel(svc *closing.Service, actor string) ClosingModel {
	return ClosingModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		month:       period.Of(time.Now()),
		loading:     true,
	}
}

func (m ClosingModel) Title() string { return "Monthly Closing" }

func (m ClosingModel) ShortHelp() string {
	if m.form != nil {
		return "Enter: confirm | Esc: cancel"
	}

	return "Esc: back | [ ]: month | s: save closing | r: refresh"
}

func (m ClosingModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ClosingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadClosingMsg:
		m.loading = false
		m.err = msg.err
		m.figures = msg.figures

		return m, nil

	case closingSavedMsg:
		m.form = nil
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Closing saved."
		m.figures = msg.figures

		return m, nil
	}

	if m.form != nil {
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if next, ok := stepMonth(keyMsg.String(), m.month); ok {
		m.month = next
		m.loading = true
		m.status = ""

		return m, m.loadCmd()
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		m.loading = true
		return m, m.loadCmd()
	case "s":
		m.confirm = new(false)
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Save the closing of %s?", m.month)).
					Description("A saved closing replaces the previous one and reopens the remittance.").
					Affirmative("Save").
					Negative("Cancel").
					Value(m.confirm),
			),
		).WithWidth(60).WithShowHelp(false)

		return m, m.form.Init()
	}

	return m, nil
}

func (m ClosingModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !*m.confirm {
		m.form = nil
		return m, nil
	}

	return m, m.saveCmd()
}

func (m ClosingModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Computing closing...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	f := m.figures

	state := activeStyle("preview")
	if f.Saved() {
		state = fmt.Sprintf("closed by %s on %s", f.ClosedBy, FormatDate(*f.ClosedAt))
	}

	rows := [][2]string{
		{"Gross", FormatAmount(f.Gross)},
		{"Margin", FormatAmount(f.Margin)},
		{"Technicians", FormatAmount(f.Technicians)},
		{"Net base", FormatAmount(f.NetBase)},
		{"Adjustments", FormatAmount(f.Adjustments)},
		{"Net", FormatAmount(f.Net)},
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-14s %12s\n", r[0], r[1])
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Month: %s   %s", activeStyle(m.month.String()), state),
		"",
		boxed(strings.TrimRight(b.String(), "\n")),
	)

	if m.form != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", m.form.View())
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadClosingMsg struct {
	figures *closing.Figures
	err     error
}

func (m ClosingModel) loadCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		f, err := m.svc.Get(ctx, month)
		if errors.Is(err, closing.ErrNotFound) {
			f, err = m.svc.Preview(ctx, month)
		}

		return loadClosingMsg{figures: f, err: err}
	}
}

type closingSavedMsg struct {
	figures *closing.Figures
	err     error
}

func (m ClosingModel) saveCmd() tea.Cmd {
	month := m.month
	actor := m.Actor

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		f, err := m.svc.Save(ctx, month, actor)

		return closingSavedMsg{figures: f, err: err}
	}
}
