package core

import (
	"errors"
	"strings"
	"time"
)

const (
	PersonJacob   Person = "jacob"
	PersonNaomi   Person = "naomi"
	PersonJoint   Person = "joint"
	PersonUnknown Person = ""
)

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

type (
	// Person attributes a transaction to a household member or the shared fund.
	Person string

	TxType string

	// Money is an amount in the smallest currency unit (whole won).
	Money struct {
		Units int64
	}

	// Transaction is the only persisted entity. Records are append-only:
	// once written they are never updated or deleted by this system.
	Transaction struct {
		Timestamp time.Time
		Person    Person
		Amount    Money
		Memo      string
		Type      TxType
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrUnknownSender    = errors.New("unknown sender")
	ErrUnrecognized     = errors.New("unrecognized command")
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)

// ParsePerson maps a token to a member of the closed person set.
func ParsePerson(s string) (Person, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jacob":
		return PersonJacob, true
	case "naomi":
		return PersonNaomi, true
	case "joint":
		return PersonJoint, true
	}
	return PersonUnknown, false
}

func (p Person) Valid() bool {
	switch p {
	case PersonJacob, PersonNaomi, PersonJoint:
		return true
	}
	return false
}

// Display returns the capitalized form used in replies and sheet rows.
func (p Person) Display() string {
	if p == PersonUnknown {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

func (t TxType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (m Money) Validate() error {
	if m.Units < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.Timestamp.IsZero() {
		return errors.New("timestamp cannot be zero")
	}
	if !t.Person.Valid() {
		return errors.New("person must be one of jacob, naomi, joint")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return errors.New("type must be income or expense")
	}
	if len(t.Memo) > 200 {
		return errors.New("memo too long (max 200 characters)")
	}
	return nil
}
