// Package mongo implements storage.Storage on MongoDB. Every entity is a
// document keyed by its UUID in string form. Unique indexes on user email and
// catalog names make the database the authority on uniqueness.
//
// Transactions require the server to run as a replica set.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"petregistry/pkg/storage"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	usersCollection         = "users"
	petTypesCollection      = "pet_types"
	petPropertiesCollection = "pet_properties"
	petsCollection          = "pets"
)

// Options defines the MongoDB connection parameters.
type Options struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// Mongo implements storage.Storage and storage.TxStorage for MongoDB.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	// sess and txCtx are set when this handle is a transaction.
	sess  *mongo.Session
	txCtx context.Context //nolint: containedctx
}

var (
	_ storage.Storage   = (*Mongo)(nil)
	_ storage.TxStorage = (*Mongo)(nil)
)

// New connects to MongoDB, verifies the connection with a ping and ensures
// the unique indexes exist.
func New(ctx context.Context, opts Options) (*Mongo, error) {
	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
	}
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)

		return nil, fmt.Errorf("could not ping mongo: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(opts.Database)}
	if err := m.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)

		return nil, err
	}

	return m, nil
}

// Ping checks that the server is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("could not ping mongo: %w", err)
	}

	return nil
}

// EnsureIndexes creates the unique indexes the backend relies on. It is
// idempotent.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := map[string]string{
		usersCollection:         "email",
		petTypesCollection:      "name",
		petPropertiesCollection: "name",
	}
	for coll, field := range unique {
		if _, err := m.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(coll + "_" + field + "_key"),
		}); err != nil {
			return fmt.Errorf("could not create unique index on %s.%s: %w", coll, field, err)
		}
	}

	if _, err := m.db.Collection(petsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owners", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("pets_owners_idx"),
	}); err != nil {
		return fmt.Errorf("could not create pets owners index: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("could not disconnect mongo: %w", err)
	}

	return nil
}

// Begin starts a session and a transaction on it. Operations on the returned
// handle run inside that transaction regardless of the context they get.
func (m *Mongo) Begin(ctx context.Context) (storage.TxStorage, error) {
	if m.sess != nil {
		return nil, storage.ErrAlreadyInTx
	}

	sess, err := m.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	if err := sess.StartTransaction(); err != nil {
		sess.EndSession(ctx)

		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &Mongo{
		client: m.client,
		db:     m.db,
		sess:   sess,
		txCtx:  mongo.NewSessionContext(ctx, sess),
	}, nil
}

// Commit commits the transaction and ends its session.
func (m *Mongo) Commit() error {
	if m.sess == nil {
		return storage.ErrNotInTx
	}
	defer m.sess.EndSession(m.txCtx)

	if err := m.sess.CommitTransaction(m.txCtx); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the transaction and ends its session.
func (m *Mongo) Rollback() error {
	if m.sess == nil {
		return storage.ErrNotInTx
	}
	defer m.sess.EndSession(m.txCtx)

	if err := m.sess.AbortTransaction(m.txCtx); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// WithTx runs cb in a transaction, committing if it returns nil and rolling
// back otherwise. Transactions aborted by a transient error, such as a write
// conflict with a concurrent transaction, are retried from the start, so cb
// may run more than once.
func (m *Mongo) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	if m.sess != nil {
		return storage.ErrAlreadyInTx
	}

	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, cb(&Mongo{client: m.client, db: m.db, sess: sess, txCtx: txCtx})
	})

	return err
}

// opCtx binds ctx to the handle's transaction, if any.
func (m *Mongo) opCtx(ctx context.Context) context.Context {
	if m.sess == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, m.sess)
}

// findOne decodes the first document matching filter into out. It reports
// false when nothing matches.
func (m *Mongo) findOne(ctx context.Context, coll string, filter any, out any) (bool, error) {
	err := m.db.Collection(coll).FindOne(m.opCtx(ctx), filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not fetch from %s: %w", coll, err)
	}

	return true, nil
}

func (m *Mongo) insert(ctx context.Context, coll string, doc any) error {
	if _, err := m.db.Collection(coll).InsertOne(m.opCtx(ctx), doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("could not insert into %s: %w", coll, storage.ErrDuplicate)
		}

		return fmt.Errorf("could not insert into %s: %w", coll, err)
	}

	return nil
}

// now is truncated to the millisecond precision BSON dates keep.
func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
