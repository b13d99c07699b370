package view

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finanzas/cmd/dashboard/internal/api"
)

const (
	recentCount = 5
	barWidth    = 20
)

// DashboardModel renders the summary cards, both per-category breakdowns,
// the six-month trend, and the latest transactions. All six datasets load
// concurrently; a failed fetch logs and leaves its slice of state as-is.
type DashboardModel struct {
	CommonModel
	client *api.Client

	summary  api.Summary
	expenses []api.CategoryTotal
	incomes  []api.CategoryTotal
	trend    []api.TrendPoint
	txs      []api.Transaction
	cats     []api.Category

	pending int
}

func NewDashboardModel(client *api.Client) DashboardModel {
	return DashboardModel{client: client, pending: 6}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "2: transactions | r: refresh | q: quit"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload issues the six fetches as one batch.
func (m DashboardModel) Reload() tea.Cmd {
	return tea.Batch(
		m.loadSummaryCmd(),
		m.loadExpensesCmd(),
		m.loadIncomesCmd(),
		m.loadTrendCmd(),
		m.loadTransactionsCmd(),
		m.loadCategoriesCmd(),
	)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.pending--
		if msg.err != nil {
			slog.Error("failed to load summary", "error", msg.err)
			return m, nil
		}

		m.summary = *msg.summary

		return m, nil

	case expensesMsg:
		m.pending--
		if msg.err != nil {
			slog.Error("failed to load expenses by category", "error", msg.err)
			return m, nil
		}

		m.expenses = msg.totals

		return m, nil

	case incomesMsg:
		m.pending--
		if msg.err != nil {
			slog.Error("failed to load incomes by category", "error", msg.err)
			return m, nil
		}

		m.incomes = msg.totals

		return m, nil

	case trendMsg:
		m.pending--
		if msg.err != nil {
			slog.Error("failed to load trend", "error", msg.err)
			return m, nil
		}

		m.trend = msg.points

		return m, nil

	case dashTxsMsg:
		m.pending--
		if msg.err != nil {
			slog.Error("failed to load transactions", "error", msg.err)
			return m, nil
		}

		m.txs = msg.txs

		return m, nil

	case dashCatsMsg:
		m.pending--
		if msg.err != nil {
			slog.Error("failed to load categories", "error", msg.err)
			return m, nil
		}

		m.cats = msg.cats

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.pending > 0 {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		summaryCard("Income", FormatAmount(m.summary.TotalIncome), "35"),
		summaryCard("Expenses", FormatAmount(m.summary.TotalExpense), "203"),
		summaryCard("Balance", FormatAmount(m.summary.Balance), "75"),
	)

	breakdowns := lipgloss.JoinHorizontal(lipgloss.Top,
		breakdownView("Expenses by category", m.expenses),
		"  ",
		breakdownView("Income by category", m.incomes),
	)

	sections := []string{
		cards,
		breakdowns,
		m.trendView(),
		m.recentView(),
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func summaryCard(title, value, color string) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 2).
		MarginRight(2).
		Render(fmt.Sprintf("%s\n%s",
			lipgloss.NewStyle().Faint(true).Render(title),
			lipgloss.NewStyle().Bold(true).Render(value),
		))
}

func breakdownView(title string, totals []api.CategoryTotal) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n")

	if len(totals) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("no data"))
		return b.String()
	}

	max := totals[0].Total
	for _, t := range totals {
		if t.Total > max {
			max = t.Total
		}
	}

	for _, t := range totals {
		b.WriteString(fmt.Sprintf("%s %-16s %s %s\n",
			t.Icon,
			t.Name,
			bar(t.Total, max),
			FormatAmount(t.Total),
		))
	}

	return b.String()
}

func (m DashboardModel) trendView() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Last six months"))
	b.WriteString("\n")

	if len(m.trend) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("no data"))
		return b.String()
	}

	max := 0.0

	for _, p := range m.trend {
		if p.Income > max {
			max = p.Income
		}

		if p.Expense > max {
			max = p.Expense
		}
	}

	income := lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	expense := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	for _, p := range m.trend {
		b.WriteString(fmt.Sprintf("%s  %s %s\n        %s %s\n",
			p.Month,
			income.Render(bar(p.Income, max)),
			FormatAmount(p.Income),
			expense.Render(bar(p.Expense, max)),
			FormatAmount(p.Expense),
		))
	}

	return b.String()
}

func (m DashboardModel) recentView() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Latest transactions"))
	b.WriteString("\n")

	if len(m.txs) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("no transactions yet"))
		return b.String()
	}

	// The list endpoint orders by date descending already.
	n := min(recentCount, len(m.txs))

	for _, tx := range m.txs[:n] {
		label := tx.CategoryName
		if label == "" {
			label = "uncategorized"
		}

		amount := FormatAmount(tx.Amount)
		if tx.Type == "expense" {
			amount = "-" + amount
		}

		b.WriteString(fmt.Sprintf("%s  %-30s %-16s %s\n",
			tx.Date,
			tx.Description,
			lipgloss.NewStyle().Faint(true).Render(label),
			amount,
		))
	}

	return b.String()
}

func bar(v, max float64) string {
	if max <= 0 {
		return ""
	}

	n := int(v / max * barWidth)
	if n < 1 && v > 0 {
		n = 1
	}

	return strings.Repeat("█", n)
}

// Messages

type summaryMsg struct {
	summary *api.Summary
	err     error
}

type expensesMsg struct {
	totals []api.CategoryTotal
	err    error
}

type incomesMsg struct {
	totals []api.CategoryTotal
	err    error
}

type trendMsg struct {
	points []api.TrendPoint
	err    error
}

type dashTxsMsg struct {
	txs []api.Transaction
	err error
}

type dashCatsMsg struct {
	cats []api.Category
	err  error
}

func (m DashboardModel) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		s, err := m.client.Summary(ctx)

		return summaryMsg{summary: s, err: err}
	}
}

func (m DashboardModel) loadExpensesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		totals, err := m.client.ExpensesByCategory(ctx)

		return expensesMsg{totals: totals, err: err}
	}
}

func (m DashboardModel) loadIncomesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		totals, err := m.client.IncomesByCategory(ctx)

		return incomesMsg{totals: totals, err: err}
	}
}

func (m DashboardModel) loadTrendCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		points, err := m.client.Trend(ctx)

		return trendMsg{points: points, err: err}
	}
}

func (m DashboardModel) loadTransactionsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		txs, err := m.client.Transactions(ctx)

		return dashTxsMsg{txs: txs, err: err}
	}
}

func (m DashboardModel) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		cats, err := m.client.Categories(ctx)

		return dashCatsMsg{cats: cats, err: err}
	}
}
