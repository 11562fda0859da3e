package core

import (
	"fmt"
	"strings"
)

// CommandKind is the closed set of things an inbound message can mean.
type CommandKind int

const (
	CmdUnrecognized CommandKind = iota
	CmdLogIncome
	CmdLogExpense
	CmdStatusQuery
	CmdHelpQuery
)

// Command is the classified form of an inbound message. Person, Amount and
// Memo are set only for CmdLogIncome and CmdLogExpense.
type Command struct {
	Kind   CommandKind
	Person Person
	Amount Money
	Memo   string
}

func (k CommandKind) String() string {
	switch k {
	case CmdLogIncome:
		return "log_income"
	case CmdLogExpense:
		return "log_expense"
	case CmdStatusQuery:
		return "status"
	case CmdHelpQuery:
		return "help"
	}
	return "unrecognized"
}

// Classify decides what an inbound message means. Rules are tried in order,
// first match wins:
//
//  1. message equals "status" (case-insensitive, trimmed) -> status query
//  2. message equals "help" -> help query
//  3. "<jacob|naomi> <amount> [memo...]" -> income for the named person
//  4. "joint <amount> [memo...]" -> joint expense
//  5. "<amount> [memo...]" -> income for the sender
//  6. anything else -> unrecognized
//
// Classify is pure: it never touches the store. Rule 5 with an unresolvable
// sender returns ErrUnknownSender; every other failure to match is reported
// as an unrecognized command, not an error.
func Classify(text string, sender Person) (Command, error) {
	trimmed := strings.TrimSpace(text)
	switch strings.ToLower(trimmed) {
	case "status":
		return Command{Kind: CmdStatusQuery}, nil
	case "help":
		return Command{Kind: CmdHelpQuery}, nil
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) == 0 {
		return Command{Kind: CmdUnrecognized}, nil
	}

	if person, ok := ParsePerson(tokens[0]); ok && len(tokens) >= 2 {
		if units, err := ParseAmount(tokens[1]); err == nil {
			cmd := Command{
				Person: person,
				Amount: Money{Units: units},
				Memo:   strings.Join(tokens[2:], " "),
			}
			if person == PersonJoint {
				cmd.Kind = CmdLogExpense
			} else {
				cmd.Kind = CmdLogIncome
			}
			return cmd, nil
		}
	}

	if units, err := ParseAmount(tokens[0]); err == nil {
		if sender == PersonUnknown {
			return Command{Kind: CmdUnrecognized}, fmt.Errorf("self-log from unresolved sender: %w", ErrUnknownSender)
		}
		return Command{
			Kind:   CmdLogIncome,
			Person: sender,
			Amount: Money{Units: units},
			Memo:   strings.Join(tokens[1:], " "),
		}, nil
	}

	return Command{Kind: CmdUnrecognized}, nil
}
