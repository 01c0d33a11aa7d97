// Package memory provides a process-local implementation of storage.Storage.
// It is meant for development and tests: data lives only as long as the
// process does.
//
// Transactions are serialized. Begin waits for its turn, bounded by the
// context it is given, then takes the store's write lock and works on
// a private copy of the committed data; Commit publishes that copy and
// Rollback discards it, so a transaction's writes become visible all at once
// or not at all.
package memory

import (
	"context"
	"errors"
	"fmt"
	"petregistry/pkg/domain"
	"petregistry/pkg/storage"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// errTxDone is returned when Commit or Rollback is called on a finished transaction.
var errTxDone = errors.New("transaction has already been committed or rolled back")

type petTypeRecord struct {
	ID          domain.PetTypeID
	Name        string
	PropertyIDs []domain.PetPropertyID
	CreatedAt   time.Time
}

// data is a complete snapshot of the store. Committed data is only replaced
// wholesale, never mutated by a transaction in place.
type data struct {
	users        map[domain.UserID]domain.User
	usersByEmail map[string]domain.UserID

	petTypes       map[domain.PetTypeID]petTypeRecord
	petTypesByName map[string]domain.PetTypeID

	properties       map[domain.PetPropertyID]domain.PetProperty
	propertiesByName map[string]domain.PetPropertyID

	pets     map[domain.PetID]domain.Pet
	petOrder []domain.PetID
}

func newData() *data {
	return &data{
		users:            make(map[domain.UserID]domain.User),
		usersByEmail:     make(map[string]domain.UserID),
		petTypes:         make(map[domain.PetTypeID]petTypeRecord),
		petTypesByName:   make(map[string]domain.PetTypeID),
		properties:       make(map[domain.PetPropertyID]domain.PetProperty),
		propertiesByName: make(map[string]domain.PetPropertyID),
		pets:             make(map[domain.PetID]domain.Pet),
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.users {
		v.Pets = slices.Clone(v.Pets)
		c.users[k] = v
	}
	for k, v := range d.usersByEmail {
		c.usersByEmail[k] = v
	}
	for k, v := range d.petTypes {
		v.PropertyIDs = slices.Clone(v.PropertyIDs)
		c.petTypes[k] = v
	}
	for k, v := range d.petTypesByName {
		c.petTypesByName[k] = v
	}
	for k, v := range d.properties {
		c.properties[k] = v
	}
	for k, v := range d.propertiesByName {
		c.propertiesByName[k] = v
	}
	for k, v := range d.pets {
		v.Owners = slices.Clone(v.Owners)
		c.pets[k] = v
	}
	c.petOrder = slices.Clone(d.petOrder)

	return c
}

type store struct {
	// txs admits one transaction at a time.
	txs       *semaphore.Weighted
	mu        sync.RWMutex
	committed *data
}

// Memory implements storage.Storage and storage.TxStorage in memory.
type Memory struct {
	store *store
	// tx is the private working copy when this handle is a transaction.
	tx *data
	// done is set once a transaction handle is committed or rolled back.
	done bool
}

// Ensure Memory implements the storage interfaces.
var (
	_ storage.Storage   = (*Memory)(nil)
	_ storage.TxStorage = (*Memory)(nil)
)

// New creates an empty in-memory storage.
func New() *Memory {
	return &Memory{store: &store{txs: semaphore.NewWeighted(1), committed: newData()}}
}

// Close is a no-op; there are no resources to release.
func (m *Memory) Close() error { return nil }

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

// Begin starts a transaction. Other transactions and non-transactional
// accesses block until it is committed or rolled back. A transaction waiting
// for its turn gives up when ctx is done.
func (m *Memory) Begin(ctx context.Context) (storage.TxStorage, error) {
	if m.tx != nil {
		return nil, storage.ErrAlreadyInTx
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	if err := m.store.txs.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}
	m.store.mu.Lock()

	return &Memory{store: m.store, tx: m.store.committed.clone()}, nil
}

// Commit publishes the transaction's working copy.
func (m *Memory) Commit() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return errTxDone
	}

	m.store.committed = m.tx
	m.release()

	return nil
}

// Rollback discards the transaction's working copy.
func (m *Memory) Rollback() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return errTxDone
	}

	m.release()

	return nil
}

func (m *Memory) release() {
	m.done = true
	m.store.mu.Unlock()
	m.store.txs.Release(1)
}

// WithTx runs cb inside a transaction, committing if it returns nil and
// rolling back when it returns an error or panics.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// read runs fn against the data visible to this handle.
func (m *Memory) read(fn func(d *data)) error {
	if m.tx != nil {
		if m.done {
			return errTxDone
		}
		fn(m.tx)

		return nil
	}

	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	fn(m.store.committed)

	return nil
}

// write runs fn against the data visible to this handle. Outside a
// transaction the committed data is modified under the write lock.
func (m *Memory) write(fn func(d *data) error) error {
	if m.tx != nil {
		if m.done {
			return errTxDone
		}

		return fn(m.tx)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	return fn(m.store.committed)
}

func now() time.Time { return time.Now().UTC() }
