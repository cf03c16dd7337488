package blob

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var _ Storage = (*Badger)(nil)

// Badger stores the slot as a single key in a BadgerDB at the given path.
type Badger struct {
	db   *badger.DB
	slot []byte
}

func OpenBadger(path, slot string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Silence default logger
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", path, err)
	}

	return &Badger{db: db, slot: []byte(slot)}, nil
}

// NewBadgerInMemory opens a disk-free Badger instance for tests.
func NewBadgerInMemory(slot string) (*Badger, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory badger: %w", err)
	}

	return &Badger{db: db, slot: []byte(slot)}, nil
}

func (b *Badger) Load(_ context.Context) ([]byte, bool, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.slot)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading blob slot: %w", err)
	}

	return data, true, nil
}

func (b *Badger) Store(_ context.Context, data []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.slot, data)
	})
	if err != nil {
		return fmt.Errorf("writing blob slot: %w", err)
	}
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
