// Package services wires the command grammar to the ledger store and turns
// every outcome, including failures, into a reply string.
package services

import (
	"context"
	"time"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
	"ledgerbot/internal/log"
)

// LedgerService handles one inbound command end to end. It never returns an
// error to the transport: all four recoverable error kinds become
// user-visible replies, and only a store failure suggests a retry.
type LedgerService struct {
	store  ledger.Store
	logger *log.Logger
	now    func() time.Time
}

func NewLedgerService(store ledger.Store, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.New(log.ComponentService, nil)
	}
	return &LedgerService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// HandleCommand classifies the message and executes it, returning the reply
// text to post back to the channel.
func (s *LedgerService) HandleCommand(ctx context.Context, text string, sender core.Person) string {
	cmd, err := core.Classify(text, sender)
	if err != nil {
		s.logger.WarnContext(ctx, "Command rejected",
			log.FieldError, err.Error(),
			log.FieldPerson, sender)
		return core.ReplyForError(err)
	}

	switch cmd.Kind {
	case core.CmdLogIncome, core.CmdLogExpense:
		return s.logTransaction(ctx, cmd)
	case core.CmdStatusQuery:
		return s.status(ctx)
	case core.CmdHelpQuery:
		return core.HelpText()
	default:
		s.logger.DebugContext(ctx, "Unrecognized command", log.FieldPerson, sender)
		return core.ReplyForError(core.ErrUnrecognized)
	}
}

func (s *LedgerService) logTransaction(ctx context.Context, cmd core.Command) string {
	txType := core.TypeIncome
	if cmd.Kind == core.CmdLogExpense {
		txType = core.TypeExpense
	}
	tx := core.Transaction{
		Timestamp: s.now(),
		Person:    cmd.Person,
		Amount:    cmd.Amount,
		Memo:      cmd.Memo,
		Type:      txType,
	}

	ref, err := s.store.Append(ctx, tx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Append failed",
			log.FieldError, err.Error(),
			log.FieldPerson, tx.Person,
			log.FieldAmountUnits, tx.Amount.Units)
		return core.ReplyForError(core.ErrStoreUnavailable)
	}

	s.logger.InfoContext(ctx, "Transaction logged",
		log.FieldRowRef, ref,
		log.FieldPerson, tx.Person,
		log.FieldAmountUnits, tx.Amount.Units,
		log.FieldTxType, tx.Type,
		log.FieldCommandKind, cmd.Kind.String())
	return core.FormatConfirmation(tx)
}

func (s *LedgerService) status(ctx context.Context) string {
	txs, err := s.store.ReadAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Read failed", log.FieldError, err.Error())
		return core.ReplyForError(core.ErrStoreUnavailable)
	}
	return core.FormatSummary(core.Summarize(txs))
}
