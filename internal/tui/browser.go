// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/claviger/internal/service"
	"github.com/dkotenko/claviger/models"
)

type screen int

const (
	screenTables screen = iota
	screenTable
	screenForm
	screenConfirm
)

type formKind int

const (
	formNone formKind = iota
	formNewTable
	formRenameTable
	formAddColumn
	formRenameColumn
	formNewRow
	formEditCell
	formImportCSV
	formSettings
	formPassword
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteTable
	confirmDeleteRow
	confirmDeleteColumn
)

const cellWidth = 18

// browserModel is the vault browser: a table list, a grid view per table
// and modal forms for every mutation. All session calls run as async
// commands so the UI never blocks on crypto or network work.
type browserModel struct {
	ctx     context.Context
	session service.SessionService

	screen screen

	tables []string
	tblIdx int

	tableName string
	table     *models.Table
	rowIdx    int
	colIdx    int

	form       formKind
	formReturn screen
	inputs     []textinput.Model
	focus      int
	formErr    string
	submitting bool

	confirm      confirmKind
	confirmLabel string

	pending bool
	syncing bool
	status  string
	errMsg  string

	relock bool
}

func newBrowserModel(ctx context.Context, session service.SessionService) browserModel {
	return browserModel{
		ctx:     ctx,
		session: session,
		screen:  screenTables,
	}
}

// Init implements [tea.Model].
func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadTables(), m.cmdPending())
}

// Update implements [tea.Model].
func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tablesLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.tables = msg.names
		if m.tblIdx >= len(m.tables) {
			m.tblIdx = len(m.tables) - 1
		}
		if m.tblIdx < 0 {
			m.tblIdx = 0
		}
		return m, nil

	case tableLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.tableName = msg.name
		m.table = msg.table
		m.clampCursor()
		m.screen = screenTable
		return m, nil

	case opDoneMsg:
		m.submitting = false
		if msg.err == nil && m.session.State() != service.StateUnlocked {
			// A successful password change locks the session; hand
			// control back to the unlock flow.
			m.relock = true
			return m, tea.Quit
		}
		if msg.err != nil {
			if m.screen == screenForm {
				m.formErr = msg.err.Error()
				return m, nil
			}
			return m.fail(msg.err)
		}
		m.status = msg.status
		m.errMsg = ""
		m.closeForm()
		cmds := []tea.Cmd{m.cmdPending(), m.clearStatusLater()}
		if m.screen == screenTable {
			cmds = append(cmds, m.cmdLoadTable(m.tableName))
		} else {
			cmds = append(cmds, m.cmdLoadTables())
		}
		return m, tea.Batch(cmds...)

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			return m.fail(fmt.Errorf("sync: %w", msg.err))
		}
		m.status = "Synced"
		m.errMsg = ""
		return m, tea.Batch(m.cmdPending(), m.clearStatusLater())

	case pendingMsg:
		m.pending = msg.pending
		return m, nil

	case settingsLoadedMsg:
		// Prefill the settings form; a missing tuple just opens it blank.
		if msg.err == nil && m.form == formSettings && len(m.inputs) == 5 {
			m.inputs[0].SetValue(msg.creds.Owner)
			m.inputs[1].SetValue(msg.creds.Repo)
			m.inputs[2].SetValue(msg.creds.Path)
			m.inputs[3].SetValue(msg.creds.Branch)
			m.inputs[4].SetValue(msg.creds.Token)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Copied to clipboard"
		return m, m.clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keystroke counts as activity for the auto-lock timer, and a
	// session that locked underneath us sends the UI back to unlock.
	m.session.Touch()
	if m.session.State() != service.StateUnlocked {
		m.relock = true
		return m, tea.Quit
	}

	if key.Matches(msg, keys.quit) && m.screen != screenForm {
		return m, tea.Quit
	}

	switch m.screen {
	case screenTables:
		return m.handleTablesKey(msg)
	case screenTable:
		return m.handleTableKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

// ── table list ───────────────────────────────────────────────────────────────

func (m browserModel) handleTablesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.tblIdx > 0 {
			m.tblIdx--
		}
	case key.Matches(msg, keys.down):
		if m.tblIdx < len(m.tables)-1 {
			m.tblIdx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.tables) > 0 {
			return m, m.cmdLoadTable(m.tables[m.tblIdx])
		}
	case key.Matches(msg, keys.newItem):
		return m.openForm(formNewTable, "table name", "columns (comma separated)"), textinput.Blink
	case key.Matches(msg, keys.rename):
		if len(m.tables) > 0 {
			next := m.openForm(formRenameTable, "new name")
			next.inputs[0].SetValue(m.tables[m.tblIdx])
			return next, textinput.Blink
		}
	case key.Matches(msg, keys.delete):
		if len(m.tables) > 0 {
			m.confirm = confirmDeleteTable
			m.confirmLabel = fmt.Sprintf("Delete table %q with all its rows?", m.tables[m.tblIdx])
			m.screen = screenConfirm
		}
	case msg.String() == "i":
		return m.openForm(formImportCSV, "table name", "csv file path"), textinput.Blink
	case key.Matches(msg, keys.export):
		return m, m.cmdCopyBackup()
	case key.Matches(msg, keys.sync):
		if !m.syncing {
			m.syncing = true
			return m, m.cmdSync()
		}
	case key.Matches(msg, keys.settings):
		next := m.openForm(formSettings, "owner", "repo", "path", "branch (optional)", "token")
		next.inputs[4].EchoMode = textinput.EchoPassword
		next.inputs[4].EchoCharacter = '*'
		return next, tea.Batch(next.cmdLoadSettings(), textinput.Blink)
	case key.Matches(msg, keys.passwd):
		next := m.openForm(formPassword, "current password", "new password")
		for i := range next.inputs {
			next.inputs[i].EchoMode = textinput.EchoPassword
			next.inputs[i].EchoCharacter = '*'
		}
		return next, textinput.Blink
	case key.Matches(msg, keys.lock):
		m.session.Lock()
		m.relock = true
		return m, tea.Quit
	}
	return m, nil
}

// ── table grid ───────────────────────────────────────────────────────────────

func (m browserModel) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenTables
		m.table = nil
		return m, m.cmdLoadTables()
	case key.Matches(msg, keys.up):
		if m.rowIdx > 0 {
			m.rowIdx--
		}
	case key.Matches(msg, keys.down):
		if m.rowIdx < len(m.table.Rows)-1 {
			m.rowIdx++
		}
	case key.Matches(msg, keys.left):
		if m.colIdx > 0 {
			m.colIdx--
		}
	case key.Matches(msg, keys.right):
		if m.colIdx < len(m.table.Columns)-1 {
			m.colIdx++
		}
	case key.Matches(msg, keys.newItem):
		return m.openForm(formNewRow, m.table.Columns...), textinput.Blink
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		if m.cellSelected() {
			next := m.openForm(formEditCell, m.table.Columns[m.colIdx])
			next.inputs[0].SetValue(m.table.Rows[m.rowIdx][m.colIdx])
			return next, textinput.Blink
		}
	case key.Matches(msg, keys.copy):
		if m.cellSelected() {
			return m, m.cmdCopy(m.table.Rows[m.rowIdx][m.colIdx])
		}
	case key.Matches(msg, keys.delete):
		if len(m.table.Rows) > 0 {
			m.confirm = confirmDeleteRow
			m.confirmLabel = fmt.Sprintf("Delete row %d of %q?", m.rowIdx+1, m.tableName)
			m.screen = screenConfirm
		}
	case key.Matches(msg, keys.addCol):
		return m.openForm(formAddColumn, "column name"), textinput.Blink
	case key.Matches(msg, keys.rename):
		if len(m.table.Columns) > 0 {
			next := m.openForm(formRenameColumn, "new column name")
			next.inputs[0].SetValue(m.table.Columns[m.colIdx])
			return next, textinput.Blink
		}
	case key.Matches(msg, keys.delCol):
		if len(m.table.Columns) > 0 {
			m.confirm = confirmDeleteColumn
			m.confirmLabel = fmt.Sprintf("Delete column %q and its cells in every row?", m.table.Columns[m.colIdx])
			m.screen = screenConfirm
		}
	case key.Matches(msg, keys.export):
		return m, m.cmdCopyCSV(m.tableName)
	case key.Matches(msg, keys.sync):
		if !m.syncing {
			m.syncing = true
			return m, m.cmdSync()
		}
	}
	return m, nil
}

// ── forms ────────────────────────────────────────────────────────────────────

func (m browserModel) openForm(kind formKind, placeholders ...string) browserModel {
	m.form = kind
	m.formReturn = m.screen
	m.formErr = ""
	m.focus = 0
	m.inputs = make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 512
		in.Width = 40
		m.inputs[i] = in
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	m.screen = screenForm
	return m
}

func (m *browserModel) closeForm() {
	if m.screen != screenForm {
		return
	}
	m.screen = m.formReturn
	m.form = formNone
	m.inputs = nil
	m.formErr = ""
}

func (m browserModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeForm()
		return m, nil
	case "tab", "down":
		m.focusInput((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.focusInput((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case "ctrl+t":
		if m.form == formSettings && !m.submitting {
			return m, m.cmdTestSettings(m.formCredentials())
		}
	case "enter":
		if m.submitting {
			return m, nil
		}
		if cmd := m.submitForm(); cmd != nil {
			m.submitting = true
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *browserModel) focusInput(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *browserModel) formCredentials() models.SyncCredentials {
	return models.SyncCredentials{
		Owner:  strings.TrimSpace(m.inputs[0].Value()),
		Repo:   strings.TrimSpace(m.inputs[1].Value()),
		Path:   strings.TrimSpace(m.inputs[2].Value()),
		Branch: strings.TrimSpace(m.inputs[3].Value()),
		Token:  strings.TrimSpace(m.inputs[4].Value()),
	}
}

// submitForm turns the filled-in form into one async session call.
func (m *browserModel) submitForm() tea.Cmd {
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = m.inputs[i].Value()
	}

	switch m.form {
	case formNewTable:
		name := strings.TrimSpace(values[0])
		var columns []string
		for _, c := range strings.Split(values[1], ",") {
			if c = strings.TrimSpace(c); c != "" {
				columns = append(columns, c)
			}
		}
		if len(columns) == 0 {
			m.formErr = "at least one column is required"
			return nil
		}
		return m.cmdOp("Table created", func(ctx context.Context) error {
			return m.session.CreateTable(ctx, name, columns...)
		})

	case formRenameTable:
		oldName, newName := m.tables[m.tblIdx], strings.TrimSpace(values[0])
		return m.cmdOp("Table renamed", func(ctx context.Context) error {
			return m.session.RenameTable(ctx, oldName, newName)
		})

	case formAddColumn:
		table, column := m.tableName, strings.TrimSpace(values[0])
		return m.cmdOp("Column added", func(ctx context.Context) error {
			return m.session.AddColumn(ctx, table, column)
		})

	case formRenameColumn:
		table, oldCol, newCol := m.tableName, m.table.Columns[m.colIdx], strings.TrimSpace(values[0])
		return m.cmdOp("Column renamed", func(ctx context.Context) error {
			return m.session.RenameColumn(ctx, table, oldCol, newCol)
		})

	case formNewRow:
		table := m.tableName
		return m.cmdOp("Row added", func(ctx context.Context) error {
			_, err := m.session.AddRow(ctx, table, values...)
			return err
		})

	case formEditCell:
		table, row, column := m.tableName, m.rowIdx, m.table.Columns[m.colIdx]
		return m.cmdOp("Cell updated", func(ctx context.Context) error {
			return m.session.UpdateCell(ctx, table, row, column, values[0])
		})

	case formImportCSV:
		table, path := strings.TrimSpace(values[0]), strings.TrimSpace(values[1])
		return m.cmdOp("CSV imported", func(ctx context.Context) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read csv file: %w", err)
			}
			return m.session.ImportCSV(ctx, table, string(data))
		})

	case formSettings:
		creds := m.formCredentials()
		return m.cmdOp("Sync settings saved", func(ctx context.Context) error {
			return m.session.SaveSyncSettings(ctx, creds)
		})

	case formPassword:
		oldPass, newPass := values[0], values[1]
		return m.cmdOp("Password changed", func(ctx context.Context) error {
			return m.session.ChangePassword(ctx, oldPass, newPass)
		})
	}
	return nil
}

// ── confirmation ─────────────────────────────────────────────────────────────

func (m browserModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		kind := m.confirm
		m.confirm = confirmNone
		switch kind {
		case confirmDeleteTable:
			name := m.tables[m.tblIdx]
			m.screen = screenTables
			return m, m.cmdOp("Table deleted", func(ctx context.Context) error {
				return m.session.DeleteTable(ctx, name)
			})
		case confirmDeleteRow:
			table, row := m.tableName, m.rowIdx
			m.screen = screenTable
			return m, m.cmdOp("Row deleted", func(ctx context.Context) error {
				return m.session.DeleteRow(ctx, table, row)
			})
		case confirmDeleteColumn:
			table, column := m.tableName, m.table.Columns[m.colIdx]
			m.screen = screenTable
			return m, m.cmdOp("Column deleted", func(ctx context.Context) error {
				return m.session.DeleteColumn(ctx, table, column)
			})
		}
	case key.Matches(msg, keys.no):
		m.confirm = confirmNone
		if m.table != nil {
			m.screen = screenTable
		} else {
			m.screen = screenTables
		}
	}
	return m, nil
}

// ── view ─────────────────────────────────────────────────────────────────────

// View implements [tea.Model].
func (m browserModel) View() string {
	switch m.screen {
	case screenTable:
		return m.viewTable()
	case screenForm:
		return m.viewForm()
	case screenConfirm:
		return renderPage("CONFIRM", m.confirmLabel, "y: yes │ n/esc: no")
	default:
		return m.viewTables()
	}
}

func (m browserModel) viewTables() string {
	var b strings.Builder
	if len(m.tables) == 0 {
		b.WriteString("No tables yet. Press n to create one.\n")
	}
	for i, name := range m.tables {
		line := "  " + name
		if i == m.tblIdx {
			line = cursorStyle.Render("> " + name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())

	return renderPage("CLAVIGER — TABLES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ r: rename │ d: delete │ i: import csv │ x: copy backup │ s: sync │ S: settings │ p: password │ L: lock │ q: quit")
}

func (m browserModel) viewTable() string {
	var b strings.Builder

	header := make([]string, len(m.table.Columns))
	for i, col := range m.table.Columns {
		cell := fmt.Sprintf("%-*s", cellWidth, fitText(col, cellWidth))
		if i == m.colIdx {
			cell = titleStyle.Render(cell)
		}
		header[i] = cell
	}
	b.WriteString(strings.Join(header, "│ "))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", (cellWidth+2)*len(m.table.Columns)))
	b.WriteString("\n")

	if len(m.table.Rows) == 0 {
		b.WriteString("(no rows — press n)\n")
	}
	for r, row := range m.table.Rows {
		cells := make([]string, len(row))
		for c, val := range row {
			cell := fmt.Sprintf("%-*s", cellWidth, fitText(val, cellWidth))
			if r == m.rowIdx && c == m.colIdx {
				cell = cursorStyle.Render(cell)
			}
			cells[c] = cell
		}
		b.WriteString(strings.Join(cells, "│ "))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())

	return renderPage("TABLE — "+m.tableName, strings.TrimRight(b.String(), "\n"),
		"arrows: move │ e: edit │ c: copy cell │ n: new row │ d: delete row │ a: add col │ r: rename col │ D: delete col │ x: copy csv │ s: sync │ esc: back")
}

func (m browserModel) viewForm() string {
	titles := map[formKind]string{
		formNewTable:     "NEW TABLE",
		formRenameTable:  "RENAME TABLE",
		formAddColumn:    "ADD COLUMN",
		formRenameColumn: "RENAME COLUMN",
		formNewRow:       "NEW ROW",
		formEditCell:     "EDIT CELL",
		formImportCSV:    "IMPORT CSV",
		formSettings:     "SYNC SETTINGS",
		formPassword:     "CHANGE PASSWORD",
	}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(fmt.Sprintf("%-12s │ [", fitText(m.inputs[i].Placeholder, 12)))
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.formErr))
		b.WriteString("\n")
	}

	hotKeys := "enter: save │ tab: next field │ esc: cancel"
	if m.form == formSettings {
		hotKeys = "enter: save │ ctrl+t: test connection │ tab: next field │ esc: cancel"
	}
	return renderPage(titles[m.form], strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m browserModel) statusLine() string {
	var parts []string
	if m.syncing {
		parts = append(parts, statusStyle.Render("syncing..."))
	} else if m.pending {
		parts = append(parts, pendingStyle.Render("● pending sync"))
	} else {
		parts = append(parts, statusStyle.Render("● synced"))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render("Error: "+m.errMsg))
	}
	return "\n" + strings.Join(parts, "  ")
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m browserModel) fail(err error) (tea.Model, tea.Cmd) {
	m.errMsg = err.Error()
	return m, nil
}

func (m *browserModel) cellSelected() bool {
	return m.table != nil && m.rowIdx < len(m.table.Rows) && m.colIdx < len(m.table.Columns)
}

func (m *browserModel) clampCursor() {
	if m.table == nil {
		return
	}
	if m.rowIdx >= len(m.table.Rows) {
		m.rowIdx = len(m.table.Rows) - 1
	}
	if m.rowIdx < 0 {
		m.rowIdx = 0
	}
	if m.colIdx >= len(m.table.Columns) {
		m.colIdx = len(m.table.Columns) - 1
	}
	if m.colIdx < 0 {
		m.colIdx = 0
	}
}

func (m browserModel) cmdLoadTables() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		names, err := session.TableNames()
		return tablesLoadedMsg{names: names, err: err}
	}
}

func (m browserModel) cmdLoadTable(name string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		table, err := session.Table(name)
		return tableLoadedMsg{name: name, table: table, err: err}
	}
}

func (m browserModel) cmdOp(status string, op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{status: status, err: op(ctx)}
	}
}

func (m browserModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return syncDoneMsg{err: session.SyncNow(ctx)}
	}
}

func (m browserModel) cmdPending() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		pending, err := session.PendingSync(ctx)
		if err != nil {
			return pendingMsg{pending: false}
		}
		return pendingMsg{pending: pending}
	}
}

func (m browserModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		creds, err := session.SyncSettings(ctx)
		return settingsLoadedMsg{creds: creds, err: err}
	}
}

func (m browserModel) cmdTestSettings(creds models.SyncCredentials) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		if err := session.TestSyncSettings(ctx, creds); err != nil {
			return opDoneMsg{err: fmt.Errorf("connection test: %w", err)}
		}
		return opDoneMsg{status: "Connection OK"}
	}
}

func (m browserModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m browserModel) cmdCopyCSV(table string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		data, err := session.ExportCSV(table)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err := clipboard.WriteAll(data); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m browserModel) cmdCopyBackup() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		data, err := session.ExportBackup()
		if err != nil {
			return copiedMsg{err: err}
		}
		if err := clipboard.WriteAll(data); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m browserModel) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
