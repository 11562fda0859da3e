package core

import (
	"errors"
	"fmt"
	"strings"
)

// FormatMoney renders an amount the way people type it: millions with one
// decimal, thousands rounded to a whole K, everything else comma-grouped.
func FormatMoney(units int64) string {
	switch {
	case units >= 1_000_000 || units <= -1_000_000:
		return fmt.Sprintf("₩%.1fM", float64(units)/1_000_000)
	case units >= 1_000 || units <= -1_000:
		return fmt.Sprintf("₩%.0fK", float64(units)/1_000)
	default:
		return "₩" + groupThousands(units)
	}
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatConfirmation renders the reply for a successfully stored record.
func FormatConfirmation(tx Transaction) string {
	txType := strings.ToUpper(string(tx.Type[:1])) + string(tx.Type[1:])
	reply := fmt.Sprintf("✅ Logged: %s - %s - %s", txType, tx.Person.Display(), FormatMoney(tx.Amount.Units))
	if tx.Memo != "" {
		reply += " - " + tx.Memo
	}
	return reply
}

// FormatSummary renders the status reply. Output is deterministic for
// identical input: members are listed in fixed order.
func FormatSummary(s Summary) string {
	var b strings.Builder
	b.WriteString("📊 *Status Update*\n\n")
	b.WriteString("*Income:*\n")
	for _, p := range Members {
		fmt.Fprintf(&b, "• %s: %s\n", p.Display(), FormatMoney(s.Income[p]))
	}
	fmt.Fprintf(&b, "• Total: %s\n\n", FormatMoney(s.TotalIncome()))
	fmt.Fprintf(&b, "*Joint Expenses:* %s\n\n", FormatMoney(s.JointExpense))
	b.WriteString("*Fund Balances:*\n")
	for _, p := range Members {
		fmt.Fprintf(&b, "• %s: %s\n", p.Display(), FormatMoney(s.Balance[p]))
	}
	fmt.Fprintf(&b, "\n%d records", s.Records)
	return b.String()
}

// HelpText is the reply for the help command.
func HelpText() string {
	return `🤖 *Ledger Bot Commands:*

*Log Income/Expense:*
• ` + "`jacob 2.8M salary`" + ` - Log Jacob's income
• ` + "`naomi 5M commission`" + ` - Log Naomi's income
• ` + "`joint 500K groceries`" + ` - Log joint expense
• ` + "`2.8M salary`" + ` - Log for yourself

*Check Status:*
• ` + "`status`" + ` - Income, joint expenses and fund balances

*Amount formats:*
• ` + "`2.8M`" + ` = ₩2,800,000
• ` + "`500K`" + ` = ₩500,000
• ` + "`2800000`" + ` = ₩2,800,000`
}

// ReplyForError converts the recoverable error kinds into user-visible
// replies. Only a store failure is worth suggesting a retry; the other
// kinds are permanent for the same input.
func ReplyForError(err error) string {
	switch {
	case errors.Is(err, ErrStoreUnavailable):
		return "❌ Couldn't save that, please try again in a moment."
	case errors.Is(err, ErrUnknownSender):
		return "❌ I don't know who you are. Use `jacob ...` or `naomi ...` to log by name."
	case errors.Is(err, ErrInvalidAmount):
		return "❌ That amount didn't parse. Try `2.8M`, `500K` or `2800000`."
	default:
		return "Sorry, I couldn't understand that. Type `help` for the command list."
	}
}
