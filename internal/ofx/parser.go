// Package ofx converts OFX/QFX bank and credit card statements into ledger entries.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/tally/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	// leadingDate matches the "MM/DD " or "DD/MM " stamp some banks put before the merchant.
	leadingDate = regexp.MustCompile(`^\d{2}/\d{2}\s+`)
)

// cardPrefixes are the point-of-sale and transfer markers stripped from statement
// names, in English and French bank exports.
var cardPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
	"PAIEMENT PAR CARTE ",
	"PAIEMENT CB ",
	"PRLV SEPA ",
	"VIR SEPA ",
	"VIR INST ",
}

// genericNames carry no merchant information; the memo is used instead.
var genericNames = map[string]bool{
	"DEBIT":           true,
	"CREDIT":          true,
	"PURCHASE":        true,
	"PAYMENT":         true,
	"POS TRANSACTION": true,
	"CARD PURCHASE":   true,
	"VIREMENT":        true,
	"PRELEVEMENT":     true,
}

// Options controls how statement lines become ledger entries.
type Options struct {
	// Category is the label stored on every imported entry.
	Category string
	// Account restricts the import to one account id; empty imports all accounts.
	Account string
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// statement is one account's transaction list, bank or credit card.
type statement struct {
	account      string
	transactions []ofxgo.Transaction
	creditCard   bool
}

func statements(resp *ofxgo.Response) []statement {
	var out []statement
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			s := statement{account: string(stmt.BankAcctFrom.AcctID)}
			if stmt.BankTranList != nil {
				s.transactions = stmt.BankTranList.Transactions
			}
			out = append(out, s)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			s := statement{account: string(stmt.CCAcctFrom.AcctID), creditCard: true}
			if stmt.BankTranList != nil {
				s.transactions = stmt.BankTranList.Transactions
			}
			out = append(out, s)
		}
	}
	return out
}

// ParseFile parses a statement and returns ledger-ready transactions. Credits
// become income and debits become expenses, both with a positive amount. Ids are
// left unset for the ledger to assign.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader, opts Options) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, stmt := range statements(resp) {
		if opts.Account != "" && stmt.account != opts.Account {
			continue
		}
		if stmt.creditCard {
			ccStmts++
		} else {
			bankStmts++
		}

		for _, ofxTx := range stmt.transactions {
			tx, err := convertTransaction(ofxTx, opts.Category)
			if err != nil {
				slog.Warn("Skipping OFX transaction", "fitid", string(ofxTx.FiTID), "error", err)
				continue
			}
			transactions = append(transactions, tx)
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// GetAccounts lists the account ids of a statement file in file order, without
// duplicates.
func (p *Parser) GetAccounts(ctx context.Context, reader io.Reader) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	for _, stmt := range statements(resp) {
		if stmt.account == "" || seen[stmt.account] {
			continue
		}
		seen[stmt.account] = true
		accounts = append(accounts, stmt.account)
	}
	return accounts, nil
}

func convertTransaction(ofxTx ofxgo.Transaction, category string) (model.Transaction, error) {
	amount, err := decimal.NewFromString(ofxTx.TrnAmt.FloatString(2))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.IsZero() {
		return model.Transaction{}, fmt.Errorf("zero amount")
	}

	// OFX uses negative amounts for debits
	kind := model.TypeIncome
	if amount.IsNegative() {
		kind = model.TypeExpense
	}

	return model.Transaction{
		Type:        kind,
		Amount:      amount.Abs(),
		Category:    category,
		Description: merchantName(ofxTx),
		Date:        model.FormatDate(ofxTx.DtPosted.Time),
	}, nil
}

// merchantName picks the payee when the bank sent one, otherwise the cleaned
// statement name, falling back to the memo for generic names.
func merchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && genericNames[strings.ToUpper(name)] {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return cleanDescription(name)
}

// cleanDescription strips a card or transfer prefix and a leading date stamp.
func cleanDescription(name string) string {
	upper := strings.ToUpper(name)
	for _, prefix := range cardPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}
	return strings.TrimSpace(leadingDate.ReplaceAllString(name, ""))
}
