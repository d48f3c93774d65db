// Package tui implements the interactive history browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/filter"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/report"
	"github.com/Veraticus/tally/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines taken by everything around the table.
const chromeHeight = 9

// IconSource resolves the display icon of a category label.
type IconSource interface {
	IconFor(label string) string
}

// Remover deletes a ledger entry by id.
type Remover interface {
	Remove(ctx context.Context, id int64) error
}

// Config holds what the browser needs to run.
type Config struct {
	Icons        IconSource
	Remover      Remover // nil disables deleting
	Theme        themes.Theme
	Currency     string
	BalanceModel report.BalanceModel
	Transactions []model.Transaction
	Criteria     filter.Criteria
	// DisableSavings leaves the savings type out of the type filter cycle.
	DisableSavings bool
}

type deletedMsg struct {
	err error
	id  int64
}

// Model is the bubbletea model of the history browser.
type Model struct {
	ctx          context.Context
	err          error
	icons        IconSource
	remover      Remover
	theme        themes.Theme
	keys         KeyMap
	status       string
	currency     string
	balanceModel report.BalanceModel
	all          []model.Transaction
	visible      []model.Transaction
	labels       []string
	help         help.Model
	table        table.Model
	criteria     filter.Criteria
	pendingID    int64
	width        int
	height       int
	confirming   bool
	quitting     bool
	noSavings    bool
}

// New creates the browser model over a snapshot of the ledger.
func New(ctx context.Context, cfg Config) Model {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "Description", Width: 24},
		{Title: "Amount", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cfg.Theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	m := Model{
		ctx:          ctx,
		icons:        cfg.Icons,
		remover:      cfg.Remover,
		theme:        cfg.Theme,
		keys:         DefaultKeyMap(),
		currency:     cfg.Currency,
		balanceModel: cfg.BalanceModel,
		all:          append([]model.Transaction(nil), cfg.Transactions...),
		help:         help.New(),
		table:        t,
		criteria:     cfg.Criteria,
		width:        80,
		height:       24,
		noSavings:    cfg.DisableSavings,
	}
	m.refreshLabels()
	m.applyFilter()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		m.help.Width = msg.Width
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.all = without(m.all, msg.id)
		m.status = fmt.Sprintf("Deleted entry %d", msg.id)
		m.refreshLabels()
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	m.err = nil

	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirming = false
			m.status = ""
			return m, m.deleteCmd(m.pendingID)
		case key.Matches(msg, m.keys.Cancel):
			m.confirming = false
			m.status = "Delete canceled"
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.CycleType):
		m.criteria.Type = m.nextType()
		m.applyFilter()

	case key.Matches(msg, m.keys.CycleMonth):
		m.criteria.Month = (m.criteria.Month + 1) % 13
		m.applyFilter()

	case key.Matches(msg, m.keys.CycleCategory):
		m.criteria.Category = m.nextLabel()
		m.applyFilter()

	case key.Matches(msg, m.keys.ClearFilters):
		m.criteria = filter.Criteria{}
		m.applyFilter()

	case key.Matches(msg, m.keys.Delete):
		if m.remover == nil {
			m.status = "Deleting is disabled"
			return m, nil
		}
		tx, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.confirming = true
		m.pendingID = tx.ID
		m.status = fmt.Sprintf("Delete %s %s of %s? (y/n)", tx.Type, cli.FormatMoney(tx.Amount, m.currency), tx.Date)

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	ctx, remover := m.ctx, m.remover
	return func() tea.Msg {
		return deletedMsg{id: id, err: remover.Remove(ctx, id)}
	}
}

// Criteria returns the filters in effect.
func (m Model) Criteria() filter.Criteria {
	return m.criteria
}

// Visible returns the transactions shown with the current filters.
func (m Model) Visible() []model.Transaction {
	return m.visible
}

// Selected returns the transaction under the cursor.
func (m Model) Selected() (model.Transaction, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return model.Transaction{}, false
	}
	return m.visible[c], true
}

func (m *Model) applyFilter() {
	m.visible = filter.Apply(m.all, m.criteria)

	rows := make([]table.Row, len(m.visible))
	for i, tx := range m.visible {
		rows[i] = table.Row{
			tx.Date,
			string(tx.Type),
			m.categoryCell(tx.Category),
			tx.Description,
			cli.FormatTransactionAmount(tx, m.currency),
		}
	}
	m.table.SetRows(rows)

	if n := len(rows); n > 0 {
		if c := m.table.Cursor(); c < 0 {
			m.table.SetCursor(0)
		} else if c >= n {
			m.table.SetCursor(n - 1)
		}
	}
}

// refreshLabels collects the distinct category labels in ledger order.
func (m *Model) refreshLabels() {
	seen := make(map[string]bool)
	m.labels = nil
	for _, tx := range m.all {
		k := strings.ToLower(strings.TrimSpace(tx.Category))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		m.labels = append(m.labels, tx.Category)
	}
}

func (m Model) nextType() model.TransactionType {
	cycle := []model.TransactionType{""}
	for _, t := range model.TransactionTypes {
		if t == model.TypeSavings && m.noSavings {
			continue
		}
		cycle = append(cycle, t)
	}
	for i, t := range cycle {
		if t == m.criteria.Type {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return ""
}

func (m Model) nextLabel() string {
	if m.criteria.Category == "" {
		if len(m.labels) == 0 {
			return ""
		}
		return m.labels[0]
	}
	current := strings.ToLower(strings.TrimSpace(m.criteria.Category))
	for i, l := range m.labels {
		if strings.ToLower(strings.TrimSpace(l)) == current {
			if i+1 < len(m.labels) {
				return m.labels[i+1]
			}
			return ""
		}
	}
	return ""
}

// categoryCell prefixes the label with its icon unless the label already carries it.
func (m Model) categoryCell(label string) string {
	if m.icons == nil {
		return label
	}
	return cli.CategoryCell(m.icons.IconFor(label), label)
}

func without(txns []model.Transaction, id int64) []model.Transaction {
	out := txns[:0:0]
	for _, tx := range txns {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	return out
}
