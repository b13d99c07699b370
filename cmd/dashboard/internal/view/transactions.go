package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"finanzas/cmd/dashboard/internal/api"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateForm
	txStateConfirmDelete
)

// TransactionsModel lists every transaction and mediates edits back to the
// API. One form serves both create and update; which one runs depends on
// whether an edit target is set.
type TransactionsModel struct {
	CommonModel
	client *api.Client

	state   txState
	table   table.Model
	txs     []api.Transaction
	cats    []api.Category
	form    *huh.Form
	confirm *huh.Form

	editing  *api.Transaction // nil means the form creates
	deleting *api.Transaction

	loading bool
	status  string

	// Form field bindings
	formDesc     string
	formAmount   string
	formType     string
	formCategory int64 // 0 means no category
	formDate     string
	formPayment  string
	formNotes    string
	confirmed    bool
}

func NewTransactionsModel(client *api.Client) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Amount", Width: 14},
		{Title: "Category", Width: 18},
		{Title: "Description", Width: 32},
		{Title: "Payment", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		client:  client,
		table:   t,
		loading: true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateForm:
		return "Navigate form | Esc: cancel"
	case txStateConfirmDelete:
		return "Confirm deletion"
	}

	return "Esc: back | n: new | e: edit | d: delete | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return tea.Batch(m.loadTxsCmd(), m.loadCatsCmd())
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.txs = msg.txs
		m.status = ""
		m.refreshTable()

		return m, nil

	case listCatsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.cats = msg.cats

		return m, nil

	case saveResultMsg:
		m.state = txStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		return m, DataChanged

	case deleteResultMsg:
		m.state = txStateBrowse
		m.confirm = nil
		m.deleting = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		return m, DataChanged

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateForm:
		return m.updateForm(msg)
	case txStateConfirmDelete:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadTxsCmd(), m.loadCatsCmd())
		case "n":
			return m.enterForm(nil)
		case "e":
			if tx := m.selectedTx(); tx != nil {
				return m.enterForm(tx)
			}

			return m, nil
		case "d":
			return m.enterConfirmDelete()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) selectedTx() *api.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	return &m.txs[idx]
}

func (m TransactionsModel) enterForm(tx *api.Transaction) (tea.Model, tea.Cmd) {
	m.editing = tx

	if tx != nil {
		m.formDesc = tx.Description
		m.formAmount = strconv.FormatFloat(tx.Amount, 'f', 2, 64)
		m.formType = tx.Type
		m.formCategory = 0
		m.formDate = tx.Date
		m.formPayment = tx.PaymentMethod
		m.formNotes = tx.Notes

		if tx.CategoryID != nil {
			m.formCategory = *tx.CategoryID
		}
	} else {
		m.formDesc = ""
		m.formAmount = ""
		m.formType = "expense"
		m.formCategory = 0
		m.formDate = time.Now().Format(time.DateOnly)
		m.formPayment = ""
		m.formNotes = ""
	}

	m.form = m.buildForm()
	m.state = txStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m *TransactionsModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("amount must be a number")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", "expense"),
					huh.NewOption("Income", "income"),
				).
				Value(&m.formType),

			// Options follow the selected type; switching type resets the
			// selection, so a category never outlives a type change.
			huh.NewSelect[int64]().
				Key("category").
				Title("Category").
				OptionsFunc(func() []huh.Option[int64] {
					return m.categoryOptions()
				}, &m.formType).
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("payment_method").
				Title("Payment method (optional)").
				Value(&m.formPayment),

			huh.NewInput().
				Key("notes").
				Title("Notes (optional)").
				Value(&m.formNotes),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m *TransactionsModel) categoryOptions() []huh.Option[int64] {
	opts := []huh.Option[int64]{huh.NewOption("None", int64(0))}

	for _, c := range m.cats {
		if c.Type != m.formType {
			continue
		}

		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", c.Icon, c.Name), c.ID))
	}

	return opts
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.editing = nil
			m.table.Focus()

			return m, nil
		}
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

func (m TransactionsModel) enterConfirmDelete() (tea.Model, tea.Cmd) {
	tx := m.selectedTx()
	if tx == nil {
		return m, nil
	}

	m.deleting = tx
	m.confirmed = false
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %q?", tx.Description)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&m.confirmed),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = txStateConfirmDelete
	m.table.Blur()

	return m, m.confirm.Init()
}

func (m TransactionsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.confirm = nil
			m.deleting = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirm.GetBool("confirm") {
		m.state = txStateBrowse
		m.confirm = nil
		m.deleting = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.deleteCmd()
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == txStateForm && m.form != nil {
		title := "New Transaction"
		if m.editing != nil {
			title = "Edit Transaction"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.state == txStateConfirmDelete && m.confirm != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Render(m.confirm.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))

	for _, tx := range m.txs {
		category := tx.CategoryName
		if category == "" {
			category = "-"
		}

		rows = append(rows, table.Row{
			tx.Date,
			tx.Type,
			FormatAmount(tx.Amount),
			category,
			tx.Description,
			tx.PaymentMethod,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type listTxsMsg struct {
	txs []api.Transaction
	err error
}

type listCatsMsg struct {
	cats []api.Category
	err  error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		txs, err := m.client.Transactions(ctx)

		return listTxsMsg{txs: txs, err: err}
	}
}

func (m TransactionsModel) loadCatsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		cats, err := m.client.Categories(ctx)

		return listCatsMsg{cats: cats, err: err}
	}
}

type saveResultMsg struct {
	err error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	amount, _ := strconv.ParseFloat(m.form.GetString("amount"), 64)

	params := api.TransactionParams{
		Description:   m.form.GetString("description"),
		Amount:        amount,
		Type:          m.form.GetString("type"),
		Date:          m.form.GetString("date"),
		PaymentMethod: m.form.GetString("payment_method"),
		Notes:         m.form.GetString("notes"),
	}

	if catID, ok := m.form.Get("category").(int64); ok && catID != 0 {
		params.CategoryID = &catID
	}

	editing := m.editing
	client := m.client

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		var err error
		if editing != nil {
			err = client.UpdateTransaction(ctx, editing.ID, params)
		} else {
			err = client.CreateTransaction(ctx, params)
		}

		return saveResultMsg{err: err}
	}
}

type deleteResultMsg struct {
	err error
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	id := m.deleting.ID
	client := m.client

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		return deleteResultMsg{err: client.DeleteTransaction(ctx, id)}
	}
}
