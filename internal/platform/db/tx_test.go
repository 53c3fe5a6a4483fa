package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

type fakeTx struct {
	pgx.Tx
	commits    int
	rollbacks  int
	failCommit bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	if f.failCommit {
		return errors.New("commit refused")
	}
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	err := WithTx(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
		return nil
	})
	if err != nil {
		t.Fatalf("with tx: %v", err)
	}
	if tx.commits != 1 {
		t.Fatalf("commits: got %d", tx.commits)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	boom := errors.New("boom")
	err := WithTx(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error back, got %v", err)
	}
	if tx.commits != 0 {
		t.Fatalf("commits: got %d", tx.commits)
	}
	if tx.rollbacks == 0 {
		t.Fatal("expected rollback")
	}
}

func TestWithTxWrapsCommitError(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{failCommit: true}
	err := WithTx(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected commit error")
	}
}

func TestWithTxBeginError(t *testing.T) {
	t.Parallel()

	boom := errors.New("no connection")
	err := WithTx(context.Background(), &fakeBeginner{err: boom}, func(pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected begin error, got %v", err)
	}
}
