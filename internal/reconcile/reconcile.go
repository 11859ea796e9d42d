// Package reconcile applies a validated inventory code to the dataset
// and backing store exactly once.
//
// Each code moves through a small state machine: an existing code is
// marked as found, an unknown code waits for explicit confirmation, and
// a confirmed code is appended. Pending confirmations are keyed by code
// and owned by the Reconciler, so the caller decides by matching on a
// structured outcome, never by inspecting message text.
package reconcile

import (
	"fmt"
	"log/slog"

	"github.com/mcastrillon/labelscan/internal/inventory"
)

// Store is the mutation surface of the backing workbook. Implementations
// persist every successful mutation immediately; Flush covers the
// backup-then-save cycle.
type Store interface {
	// MarkFound applies the "matched" marker to the code cell of an
	// existing row. Re-marking an already-marked row is a no-op with the
	// same visible state.
	MarkFound(row int) error

	// AppendCode writes a new code at the given row with the "newly
	// added" marker.
	AppendCode(code inventory.Code, row int) error

	// Flush backs up the prior store state and saves the workbook.
	Flush() error
}

// OutcomeKind tags the variants of a reconciliation outcome.
type OutcomeKind int

const (
	// Matched: the code exists; its row was highlighted.
	Matched OutcomeKind = iota
	// Added: the code was appended after confirmation.
	Added
	// PendingConfirmation: the code is unknown and waits for an explicit
	// yes before anything is written.
	PendingConfirmation
	// Rejected: validation refused the candidate; nothing was written.
	Rejected
	// StoreError: the backing store write failed; the in-memory dataset
	// may now diverge from the file until the next successful write.
	StoreError
)

// Outcome is the structured result of one reconciliation step.
type Outcome struct {
	Kind OutcomeKind
	Code inventory.Code
	Row  int   // set for Matched and Added
	Err  error // set for Rejected and StoreError
}

// Message renders the single human-readable status line for this
// outcome. Every outcome has exactly one.
func (o Outcome) Message() string {
	switch o.Kind {
	case Matched:
		return fmt.Sprintf("code %s marked as found (row %d)", o.Code, o.Row)
	case Added:
		return fmt.Sprintf("code %s added to inventory (row %d)", o.Code, o.Row)
	case PendingConfirmation:
		return fmt.Sprintf("code %s is not in the inventory; confirm to add it", o.Code)
	case Rejected:
		return fmt.Sprintf("code rejected: %v", o.Err)
	case StoreError:
		return fmt.Sprintf("inventory update failed: %v", o.Err)
	default:
		return fmt.Sprintf("unknown outcome for code %s", o.Code)
	}
}

// Reconciler owns the dataset mutations and the pending-confirmation
// state for one session. It is not safe for concurrent use; the
// interactive model serializes operations naturally.
type Reconciler struct {
	dataset *inventory.Dataset
	store   Store
	pending map[inventory.Code]struct{}
	logger  *slog.Logger
}

// New creates a Reconciler over the session's dataset and store.
func New(dataset *inventory.Dataset, store Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		dataset: dataset,
		store:   store,
		pending: make(map[inventory.Code]struct{}),
		logger:  logger,
	}
}

// Reconcile applies a validated code to the inventory.
//
// The row lookup runs against the dataset as it is right now; appending
// a code and immediately reconciling it again yields Matched. An unknown
// code transitions to PendingConfirmation and stays there across
// repeated scans until Confirm is called, without duplicating pending
// state.
func (r *Reconciler) Reconcile(code inventory.Code) Outcome {
	if row, ok := r.dataset.Find(code); ok {
		if err := r.persist(func() error { return r.store.MarkFound(row.Position) }); err != nil {
			return Outcome{Kind: StoreError, Code: code, Err: err}
		}
		r.logger.Info("code matched", "code", code, "row", row.Position)
		return Outcome{Kind: Matched, Code: code, Row: row.Position}
	}

	r.pending[code] = struct{}{}
	r.logger.Info("code awaiting confirmation", "code", code)
	return Outcome{Kind: PendingConfirmation, Code: code}
}

// Confirm resolves a pending confirmation by appending the code to the
// dataset and the store. Confirming a code that is not pending is
// rejected; after a successful append the pending entry is cleared, so
// the same confirmation cannot run twice.
func (r *Reconciler) Confirm(code inventory.Code) Outcome {
	if _, ok := r.pending[code]; !ok {
		return Outcome{
			Kind: Rejected,
			Code: code,
			Err:  fmt.Errorf("code %s is not awaiting confirmation", code),
		}
	}

	// A failed persist leaves the row in the dataset; retrying the
	// confirmation reuses that row instead of appending a second one.
	row, ok := r.dataset.Find(code)
	if !ok {
		row = r.dataset.Append(code)
	}
	if err := r.persist(func() error { return r.store.AppendCode(code, row.Position) }); err != nil {
		return Outcome{Kind: StoreError, Code: code, Err: err}
	}

	delete(r.pending, code)
	r.logger.Info("code added", "code", code, "row", row.Position)
	return Outcome{Kind: Added, Code: code, Row: row.Position}
}

// Pending returns the codes currently awaiting confirmation.
func (r *Reconciler) Pending() []inventory.Code {
	codes := make([]inventory.Code, 0, len(r.pending))
	for c := range r.pending {
		codes = append(codes, c)
	}
	return codes
}

// persist runs one store mutation followed by the backup-and-save
// cycle. Failures are reported, never retried.
func (r *Reconciler) persist(mutate func() error) error {
	if err := mutate(); err != nil {
		r.logger.Error("store mutation failed", "error", err)
		return err
	}
	if err := r.store.Flush(); err != nil {
		r.logger.Error("store flush failed", "error", err)
		return err
	}
	return nil
}
