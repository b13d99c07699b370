package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"finanzas/cmd/dashboard/internal/api"
	"finanzas/cmd/dashboard/internal/view"
	"finanzas/internal/config"
)

type View int

const (
	ViewDashboard    View = 0
	ViewTransactions View = 1
)

type model struct {
	client *api.Client

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.Client.BaseURL)

	return model{
		client:           client,
		currentView:      ViewDashboard,
		dashboardView:    view.NewDashboardModel(client),
		transactionsView: view.NewTransactionsModel(client),
	}
}

func (m model) Init() tea.Cmd {
	return m.dashboardView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewDashboard {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "2", "t":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.client)

				return m, m.transactionsView.Init()
			case "r":
				return m.reloadAll()
			}
		}

	case view.BackMsg:
		m.currentView = ViewDashboard
		return m, nil

	// Every write triggers a full re-fetch of every dataset; nothing is
	// updated optimistically.
	case view.DataChangedMsg:
		return m.reloadAll()
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	}

	return m, cmd
}

func (m model) reloadAll() (tea.Model, tea.Cmd) {
	m.dashboardView = view.NewDashboardModel(m.client)
	m.transactionsView = view.NewTransactionsModel(m.client)

	return m, tea.Batch(m.dashboardView.Init(), m.transactionsView.Init())
}

func (m model) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 1).
		Render("💰 Finanzas")

	var body, help string

	switch m.currentView {
	case ViewDashboard:
		body = m.dashboardView.View()
		help = m.dashboardView.ShortHelp()
	case ViewTransactions:
		body = m.transactionsView.View()
		help = m.transactionsView.ShortHelp()
	}

	return header + "\n" + body + "\n" +
		lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(help)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run dashboard", "error", err)
		os.Exit(1)
	}
}
