package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit caps list results when the caller does not say otherwise.
const DefaultLimit = 100

// Store is the generic create/list contract handlers depend on. *Database is
// the Mongo-backed implementation; dbtest has an in-memory one.
type Store interface {
	CreateDocument(ctx context.Context, collection string, model any) (bson.M, error)
	ListDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// Database wraps a single Mongo connection, established once at startup and
// shared by all requests. The driver's client is safe for concurrent use.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the Mongo connection and verifies it with a ping.
func Connect(ctx context.Context, uri, name string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "pinging mongodb")
	}
	return &Database{client: client, db: client.Database(name)}, nil
}

// Close tears down the connection. Called once, at shutdown.
func (d *Database) Close(ctx context.Context) error {
	return errors.Wrap(d.client.Disconnect(ctx), "disconnecting from mongodb")
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.db.Name()
}

// Ping reports whether the store is reachable.
func (d *Database) Ping(ctx context.Context) error {
	return errors.Wrap(d.client.Ping(ctx, nil), "pinging mongodb")
}

// CollectionNames lists the collections currently present in the database.
func (d *Database) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "listing collections")
	}
	return names, nil
}

// CreateDocument converts the model to a field map, stamps created_at and
// updated_at, inserts it, and returns the stored map with the generated id
// rendered as a hex string. Store errors propagate; there is no retry.
func (d *Database) CreateDocument(ctx context.Context, collection string, model any) (bson.M, error) {
	doc, err := ToDocument(model)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := d.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrapf(err, "inserting into %s", collection)
	}
	doc["_id"] = renderID(res.InsertedID)
	return doc, nil
}

// ListDocuments returns up to limit documents matching filter, in store-native
// order (no sort stage, so ordering is not guaranteed stable). A nil filter
// matches everything. The result is never nil.
func (d *Database) ListDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	cur, err := d.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", collection)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "decoding document from %s", collection)
		}
		doc["_id"] = renderID(doc["_id"])
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterating %s cursor", collection)
	}
	return docs, nil
}

// ToDocument is the single serialization path from an entity model to its
// stored field map. Models marshal through their bson tags; nothing probes for
// conversion methods at runtime.
func ToDocument(model any) (bson.M, error) {
	raw, err := bson.Marshal(model)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling model")
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshaling model document")
	}
	return doc, nil
}

func renderID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}
