// Package dbtest provides an in-memory db.Store for handler tests.
package dbtest

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"venueos/db"
)

// Memory is a db.Store keeping documents in process memory, in insertion
// order per collection. Err, when set, is returned by every operation to
// exercise store-failure paths.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	Err error
}

var _ db.Store = (*Memory)(nil)

func New() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (m *Memory) CreateDocument(_ context.Context, collection string, model any) (bson.M, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	doc, err := db.ToDocument(model)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now
	doc["_id"] = primitive.NewObjectID().Hex()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], doc)
	return doc, nil
}

func (m *Memory) ListDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit <= 0 {
		limit = db.DefaultLimit
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []bson.M{}
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		docs = append(docs, doc)
		if int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

// Count reports how many documents a collection holds.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}
