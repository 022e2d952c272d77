package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mikropanel/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	errorList  list.Model

	created int
	status  string
	err     error
}

func NewImportModel(impSvc *importer.Service, actor string) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		CommonModel:   CommonModel{Actor: actor},
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Clients" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateResult {
			var cmd tea.Cmd
			m.errorList, cmd = m.errorList.Update(msg)

			return m, cmd
		}

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.created = len(msg.result.Created)
		m.status = fmt.Sprintf("Imported %d clients, %d lines rejected.", m.created, len(msg.result.Errors))

		items := make([]list.Item, len(msg.result.Errors))
		for i, e := range msg.result.Errors {
			items[i] = lineErrorItem{err: e}
		}

		m.errorList = list.New(items, lineErrorDelegate{}, 80, 15)
		m.errorList.Title = "Rejected lines"
		m.errorList.SetShowStatusBar(false)
		m.errorList.SetFilteringEnabled(false)
		m.errorList.SetShowHelp(false)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == importStateResult {
		m.state = importStateFilePick
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select the client CSV to import:\n\n%s", m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle(m.status) + "\n\n(Esc to go back)")
	}

	content := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status)
	if len(m.errorList.Items()) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", m.errorList.View())
	}

	return style.Render(content + "\n\n(Esc to go back)")
}

// Messages

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	actor := m.Actor

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.importService.Import(ctx, f, actor)

		return importResultMsg{result: result, err: err}
	}
}

// Rejected line list

type lineErrorItem struct {
	err importer.LineError
}

func (i lineErrorItem) Title() string       { return "" }
func (i lineErrorItem) Description() string { return "" }
func (i lineErrorItem) FilterValue() string { return "" }

type lineErrorDelegate struct{}

func (d lineErrorDelegate) Height() int                             { return 1 }
func (d lineErrorDelegate) Spacing() int                            { return 0 }
func (d lineErrorDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d lineErrorDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(lineErrorItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	fmt.Fprintf(w, "%sline %d: %s", cursor, item.err.Line, item.err.Message)
}
