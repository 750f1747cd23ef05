package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/errors"
)

const (
	defaultDatabase   = "padring"
	layoutsCollection = "layouts"
	connectTimeout    = 10 * time.Second
)

// MongoStore persists layouts in a MongoDB collection, one document per
// layout keyed by its ID.
type MongoStore struct {
	client  *mongo.Client
	layouts *mongo.Collection
}

// NewMongoStore connects to the MongoDB at uri and pings it. An empty
// database name selects "padring".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping MongoDB")
	}

	return &MongoStore{
		client:  client,
		layouts: client.Database(database).Collection(layoutsCollection),
	}, nil
}

// Save upserts the layout, assigning a fresh UUID when it has no ID yet.
func (s *MongoStore) Save(ctx context.Context, l *circuit.Layout) (string, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	filter := bson.D{{Key: "_id", Value: l.ID}}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.layouts.ReplaceOne(ctx, filter, l, opts); err != nil {
		return "", errors.Wrap(errors.ErrCodeStore, err, "save layout %s", l.ID)
	}
	return l.ID, nil
}

// Get fetches a layout by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*circuit.Layout, error) {
	var l circuit.Layout
	err := s.layouts.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "fetch layout %s", id)
	}
	return &l, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
}
