package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// documentKey is the single key the badger backend writes.
var documentKey = []byte("circular:document")

// BadgerBackend keeps the document under one key in a Badger database.
type BadgerBackend struct {
	db *badger.DB
}

// NewBadgerBackend opens (or creates) a Badger database in dir.
func NewBadgerBackend(dir string) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil            // Badger's own logger is too chatty
	opts.SyncWrites = true       // every Save is durable before the response
	opts.CompactL0OnClose = true // faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	return &BadgerBackend{db: db}, nil
}

// Name implements Backend.
func (b *BadgerBackend) Name() string { return "badger" }

// Read implements Backend.
func (b *BadgerBackend) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(documentKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// Write implements Backend.
func (b *BadgerBackend) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(documentKey, data)
	})
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Close implements Backend.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}
