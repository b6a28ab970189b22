package generator

import (
	"context"
	"fmt"
	"os"
)

// Transaction represents a set of operations that either all apply or leave
// nothing behind. Every path an operation touches must live under the
// transaction's cleanup root.
type Transaction struct {
	root       string
	operations []Operation
	committed  bool
}

// NewTransaction creates a transaction whose rollback removes root entirely.
func NewTransaction(root string) *Transaction {
	return &Transaction{
		root:       root,
		operations: make([]Operation, 0),
	}
}

// Add stages an operation (doesn't execute yet)
func (t *Transaction) Add(op Operation) {
	t.operations = append(t.operations, op)
}

// Commit executes all staged operations in order.
// If any operation fails, the cleanup root is removed and the original
// error is returned.
func (t *Transaction) Commit(ctx context.Context) error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	for _, op := range t.operations {
		if err := op.Execute(ctx); err != nil {
			t.rollback()
			return err
		}
	}

	t.committed = true
	return nil
}

// rollback removes everything under the cleanup root. Best effort; removal
// errors must never mask the error that triggered the rollback.
func (t *Transaction) rollback() {
	if t.root != "" {
		os.RemoveAll(t.root)
	}
}

// Rollback manually removes the cleanup root of an uncommitted transaction
// (for use in defer).
func (t *Transaction) Rollback() {
	if !t.committed {
		t.rollback()
	}
}
