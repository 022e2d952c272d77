package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/mikropanel/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	adjustmentStore "github.com/MrJamesThe3rd/mikropanel/internal/adjustment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	clientStore "github.com/MrJamesThe3rd/mikropanel/internal/client/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	closingStore "github.com/MrJamesThe3rd/mikropanel/internal/closing/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	collectionStore "github.com/MrJamesThe3rd/mikropanel/internal/collection/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/config"
	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/mikropanel/internal/expense/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/importer"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/mikropanel/internal/inventory/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/report"
)

type model struct {
	actor string

	collectionService *collection.Service
	inventoryService  *inventory.Service
	closingService    *closing.Service
	expenseService    *expense.Service
	importService     *importer.Service
	reportService     *report.Service

	currentView View

	collectionView view.CollectionModel
	inventoryView  view.InventoryModel
	closingView    view.ClosingModel
	expenseView    view.ExpenseModel
	importView     view.ImportModel
	exportView     view.ExportModel
}

type View int

const (
	ViewMenu       View = 0
	ViewCollection View = 1
	ViewInventory  View = 2
	ViewClosing    View = 3
	ViewExpenses   View = 4
	ViewImport     View = 5
	ViewExport     View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	b := cfg.Billing
	actor := cfg.TUI.Actor

	collectionSvc := collection.NewService(collectionStore.New(db))
	closingSvc := closing.NewService(closingStore.New(db), b.Closing())
	inventorySvc := inventory.NewService(inventoryStore.New(db), money.FromDecimal(b.RouterFee))
	expenseSvc := expense.NewService(expenseStore.New(db))
	importSvc := importer.NewService(client.NewService(clientStore.New(db), b.CycleDay))
	reportSvc := report.NewService(collectionSvc, adjustment.NewService(adjustmentStore.New(db)), closingSvc)

	return model{
		actor:             actor,
		collectionService: collectionSvc,
		inventoryService:  inventorySvc,
		closingService:    closingSvc,
		expenseService:    expenseSvc,
		importService:     importSvc,
		reportService:     reportSvc,
		currentView:       ViewMenu,
		collectionView:    view.NewCollectionModel(collectionSvc, actor),
		inventoryView:     view.NewInventoryModel(inventorySvc, actor),
		closingView:       view.NewClosingModel(closingSvc, actor),
		expenseView:       view.NewExpenseModel(expenseSvc, actor),
		importView:        view.NewImportModel(importSvc, actor),
		exportView:        view.NewExportModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCollection
				m.collectionView = view.NewCollectionModel(m.collectionService, m.actor)

				return m, m.collectionView.Init()
			case "2":
				m.currentView = ViewInventory
				m.inventoryView = view.NewInventoryModel(m.inventoryService, m.actor)

				return m, m.inventoryView.Init()
			case "3":
				m.currentView = ViewClosing
				m.closingView = view.NewClosingModel(m.closingService, m.actor)

				return m, m.closingView.Init()
			case "4":
				m.currentView = ViewExpenses
				m.expenseView = view.NewExpenseModel(m.expenseService, m.actor)

				return m, m.expenseView.Init()
			case "5":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.actor)

				return m, m.importView.Init()
			case "6":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.reportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCollection:
		var newModel tea.Model
		newModel, cmd = m.collectionView.Update(msg)
		m.collectionView = newModel.(view.CollectionModel)
	case ViewInventory:
		var newModel tea.Model
		newModel, cmd = m.inventoryView.Update(msg)
		m.inventoryView = newModel.(view.InventoryModel)
	case ViewClosing:
		var newModel tea.Model
		newModel, cmd = m.closingView.Update(msg)
		m.closingView = newModel.(view.ClosingModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expenseView.Update(msg)
		m.expenseView = newModel.(view.ExpenseModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"MikroPanel\n\n" +
				"1. Collection\n" +
				"2. Inventory\n" +
				"3. Monthly Closing\n" +
				"4. Expenses\n" +
				"5. Import Clients\n" +
				"6. Export Report\n\n" +
				"q. Quit",
		)
	case ViewCollection:
		current = m.collectionView
	case ViewInventory:
		current = m.inventoryView
	case ViewClosing:
		current = m.closingView
	case ViewExpenses:
		current = m.expenseView
	case ViewImport:
		current = m.importView
	case ViewExport:
		current = m.exportView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 1, 0).Render(current.Title())
	help := lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, current.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
