package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>EUR
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>JAN01
<NAME>STARBUCKS
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240131120000[0:GMT]
<TRNAMT>1800.00
<FITID>JAN02
<NAME>ACME PAYROLL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func idArg(tx model.Transaction) string {
	return strconv.FormatInt(tx.ID, 10)
}

func TestAddAndHistory(t *testing.T) {
	env := newTallyEnv(t)

	out := env.mustRun("add", "expense", "12,50", "courses", "-d", "Marché")
	assert.Contains(t, out, "Added expense -12.50 € to 🛒 Courses")

	env.mustRun("add", "income", "100", "Salaire")

	txns := env.transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, "🛒 Courses", txns[0].Category)
	assert.True(t, decimal.RequireFromString("12.5").Equal(txns[0].Amount))
	assert.Equal(t, "Marché", txns[0].Description)
	assert.Equal(t, model.FormatDate(time.Now()), txns[0].Date)
	assert.Equal(t, "Salaire", txns[1].Category)

	out = env.mustRun("history")
	assert.Contains(t, out, "Marché")
	assert.Contains(t, out, "-12.50 €")
	assert.Contains(t, out, "+100.00 €")
	assert.Contains(t, out, "💰 Salaire")
	assert.Contains(t, out, "2 of 2 entries")

	out = env.mustRun("history", "--type", "income")
	assert.Contains(t, out, "Salaire")
	assert.NotContains(t, out, "Marché")

	out = env.mustRun("history", "--category", "courses")
	assert.Contains(t, out, "Marché")
	assert.NotContains(t, out, "Salaire")

	out = env.mustRun("history", "--month", strconv.Itoa(int(time.Now().Month())))
	assert.Contains(t, out, "2 of 2 entries")

	out = env.mustRun("history", "--category", "Loyer")
	assert.Contains(t, out, "No transactions found.")

	_, err := env.run("", "history", "--month", "13")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = env.run("", "history", "--type", "gift")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown type", args: []string{"add", "gift", "10", "Autres"}},
		{name: "non-numeric amount", args: []string{"add", "expense", "abc", "Autres"}},
		{name: "zero amount", args: []string{"add", "expense", "0", "Autres"}},
		{name: "blank category", args: []string{"add", "expense", "10", "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTallyEnv(t)

			_, err := env.run("", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			assert.Empty(t, env.transactions())
		})
	}
}

func TestAddSavingsDisabled(t *testing.T) {
	env := newTallyEnv(t)
	t.Setenv("TALLY_LEDGER_SAVINGS", "false")

	_, err := env.run("", "add", "savings", "20", "Autres")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, "savings entries are disabled by ledger.savings", common.UserMessage(err))

	env.mustRun("add", "expense", "20", "Autres")
	assert.Len(t, env.transactions(), 1)
}

func TestAddMultiWordCategory(t *testing.T) {
	env := newTallyEnv(t)

	env.mustRun("add", "expense", "8", "Sorties", "cinéma")

	txns := env.transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "Sorties cinéma", txns[0].Category)
}

func TestEdit(t *testing.T) {
	env := newTallyEnv(t)
	env.mustRun("add", "expense", "15", "courses", "-d", "Marché")
	tx := env.transactions()[0]

	out := env.mustRun("edit", idArg(tx), "--amount", "20,40")
	assert.Contains(t, out, "Updated")

	edited := env.transactions()[0]
	assert.True(t, decimal.RequireFromString("20.4").Equal(edited.Amount))
	assert.Equal(t, "Marché", edited.Description)
	assert.Equal(t, tx.Category, edited.Category)
	assert.Equal(t, tx.Date, edited.Date)

	env.mustRun("edit", idArg(tx), "-d", "Primeur")
	edited = env.transactions()[0]
	assert.True(t, decimal.RequireFromString("20.4").Equal(edited.Amount))
	assert.Equal(t, "Primeur", edited.Description)

	tests := []struct {
		target error
		name   string
		args   []string
	}{
		{name: "unknown id", args: []string{"edit", "42", "--amount", "1"}, target: common.ErrNotFound},
		{name: "no flags", args: []string{"edit", idArg(tx)}, target: common.ErrInvalidInput},
		{name: "bad amount", args: []string{"edit", idArg(tx), "--amount", "abc"}, target: common.ErrInvalidInput},
		{name: "bad id", args: []string{"edit", "abc", "--amount", "1"}, target: common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run("", tt.args...)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	assert.True(t, decimal.RequireFromString("20.4").Equal(env.transactions()[0].Amount))
}

func TestDelete(t *testing.T) {
	env := newTallyEnv(t)
	env.mustRun("add", "expense", "15", "courses")
	env.mustRun("add", "income", "100", "Salaire")
	txns := env.transactions()
	require.Len(t, txns, 2)

	out, err := env.run("n\n", "delete", idArg(txns[0]))
	require.NoError(t, err)
	assert.Contains(t, out, "[y/N]")
	assert.Contains(t, out, "Delete canceled.")
	assert.Len(t, env.transactions(), 2)

	out, err = env.run("y\n", "delete", idArg(txns[0]))
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted transaction")
	remaining := env.transactions()
	require.Len(t, remaining, 1)
	assert.Equal(t, txns[1].ID, remaining[0].ID)

	env.mustRun("delete", "-f", idArg(txns[1]))
	assert.Empty(t, env.transactions())

	_, err = env.run("", "delete", "-f", idArg(txns[1]))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSummary(t *testing.T) {
	env := newTallyEnv(t)

	out := env.mustRun("summary")
	assert.Contains(t, out, "No spending recorded yet.")

	env.mustRun("add", "income", "100", "Salaire")
	env.mustRun("add", "expense", "15", "courses")
	env.mustRun("add", "savings", "20", "loyer")

	out = env.mustRun("summary")
	assert.Contains(t, out, "100.00 €")
	assert.Contains(t, out, "65.00 €")
	assert.Contains(t, out, "Spending by category")
	assert.Contains(t, out, "🛒 Courses")
	assert.Contains(t, out, "🏠 Loyer")
	assert.NotContains(t, out, "Invested")
}

func TestSummaryTwoWay(t *testing.T) {
	env := newTallyEnv(t)
	t.Setenv("TALLY_LEDGER_BALANCE_MODEL", "two-way")

	env.mustRun("add", "income", "100", "Salaire")
	env.mustRun("add", "expense", "15", "courses")
	env.mustRun("add", "savings", "20", "loyer")

	out := env.mustRun("summary")
	assert.Contains(t, out, "85.00 €")
	assert.Contains(t, out, "Savings (not in balance)")
	assert.Contains(t, out, "🛒 Courses")
	assert.NotContains(t, out, "🏠 Loyer")
}

func TestCategories(t *testing.T) {
	env := newTallyEnv(t)

	out := env.mustRun("categories", "list")
	for _, c := range model.DefaultCategories() {
		assert.Contains(t, out, c.Name)
	}

	out = env.mustRun("categories", "add", "Voyage", "--icon", "✈️", "--color", "#ABCDEF")
	assert.Contains(t, out, "Added category ✈️ Voyage (#ABCDEF)")

	out = env.mustRun("categories", "add", "Cadeaux")
	assert.Contains(t, out, "Added category 💰 Cadeaux (#E5E7EB)")

	env.mustRun("add", "expense", "300", "voyage")
	assert.Equal(t, "✈️ Voyage", env.transactions()[0].Category)

	out = env.mustRun("categories", "remove", "Voyage")
	assert.Contains(t, out, "Removed 1 category")
	assert.Equal(t, "✈️ Voyage", env.transactions()[0].Category)

	_, err := env.run("", "categories", "remove", "Voyage")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = env.run("", "categories", "add", "  ")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	out, err = env.run("n\n", "categories", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset canceled.")
	assert.Len(t, env.snapshot().Categories().List(), 7)

	out, err = env.run("y\n", "categories", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Restored 6 default categories")
	assert.Equal(t, model.DefaultCategories(), env.snapshot().Categories().List())
	assert.Len(t, env.transactions(), 1)
}

func TestInvest(t *testing.T) {
	env := newTallyEnv(t)

	out := env.mustRun("invest", "list")
	assert.Contains(t, out, "No investment movements yet.")

	out = env.mustRun("invest", "deposit", "100")
	assert.Contains(t, out, "invested balance 100.00 €")

	out = env.mustRun("invest", "withdraw", "30,5", "-d", "Broker fees")
	assert.Contains(t, out, "invested balance 69.50 €")

	out = env.mustRun("invest", "list")
	assert.Contains(t, out, "Broker fees")
	assert.Contains(t, out, "-30.50 €")
	assert.Contains(t, out, "Invested: 69.50 €")

	out = env.mustRun("summary")
	assert.Contains(t, out, "Invested")

	_, err := env.run("", "invest", "deposit", "abc")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Len(t, env.snapshot().Investments().List(), 2)
}

func TestImport(t *testing.T) {
	env := newTallyEnv(t)

	file := filepath.Join(env.home, "statement.ofx")
	require.NoError(t, os.WriteFile(file, []byte(statementOFX), 0o600))

	out := env.mustRun("import", file, "--category", "courses", "--dry-run")
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "STARBUCKS")
	assert.Empty(t, env.transactions())

	out = env.mustRun("import", file, "--list-accounts")
	assert.Contains(t, out, "1234567890")

	out = env.mustRun("import", file, "--category", "courses")
	assert.Contains(t, out, "Imported 2 of 2 transactions into 🛒 Courses")

	txns := env.transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, model.TypeExpense, txns[0].Type)
	assert.True(t, decimal.RequireFromString("25.50").Equal(txns[0].Amount))
	assert.Equal(t, "15/01/2024", txns[0].Date)
	assert.Equal(t, "STARBUCKS", txns[0].Description)
	assert.Equal(t, model.TypeIncome, txns[1].Type)
	assert.NotEqual(t, txns[0].ID, txns[1].ID)

	out = env.mustRun("history", "--month", "1")
	assert.Contains(t, out, "2 of 2 entries")

	out = env.mustRun("import", file, "--category", "Autres", "--account", "0000")
	assert.Contains(t, out, "No transactions found to import")
}

func TestImportErrors(t *testing.T) {
	env := newTallyEnv(t)

	file := filepath.Join(env.home, "statement.ofx")
	require.NoError(t, os.WriteFile(file, []byte(statementOFX), 0o600))

	_, err := env.run("", "import", file)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = env.run("", "import", filepath.Join(env.home, "missing.ofx"), "--category", "Autres")
	assert.ErrorIs(t, err, common.ErrNotFound)

	broken := filepath.Join(env.home, "broken.ofx")
	require.NoError(t, os.WriteFile(broken, []byte("not an ofx file"), 0o600))
	_, err = env.run("", "import", broken, "--category", "Autres")
	assert.Error(t, err)
	assert.Empty(t, env.transactions())
}

func TestReset(t *testing.T) {
	env := newTallyEnv(t)
	env.mustRun("add", "expense", "15", "courses")
	env.mustRun("invest", "deposit", "50")
	env.mustRun("categories", "add", "Voyage")

	out, err := env.run("\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "This will delete 1 entries and 1 investment movements.")
	assert.Contains(t, out, "Reset canceled.")
	assert.Len(t, env.transactions(), 1)

	out = env.mustRun("reset", "--force")
	assert.Contains(t, out, "All data deleted")

	sess := env.snapshot()
	assert.Empty(t, sess.Ledger().List())
	assert.Empty(t, sess.Investments().List())
	assert.Equal(t, model.DefaultCategories(), sess.Categories().List())
}

func TestUserMessages(t *testing.T) {
	env := newTallyEnv(t)

	_, err := env.run("", "delete", "-f", "99")
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("no transaction with id %d", 99), common.UserMessage(err))
}
