package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clowdgraph/clowd/pkg/analyze"
)

const reportsCollection = "reports"

// MongoStore archives reports in MongoDB for server deployments, where
// reports must survive restarts and be visible across instances.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a store using the given
// database. The connection is verified with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(reportsCollection),
	}, nil
}

// mongoReport wraps a report with the ID promoted to _id so lookups use
// the collection's primary index.
type mongoReport struct {
	ID     string          `bson:"_id"`
	Report *analyze.Report `bson:"report"`
}

// SaveReport archives a report.
func (s *MongoStore) SaveReport(ctx context.Context, report *analyze.Report) error {
	_, err := s.coll.InsertOne(ctx, mongoReport{ID: report.ID, Report: report})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert report %s: %w", report.ID, err)
	}
	return nil
}

// GetReport retrieves a report by ID.
func (s *MongoStore) GetReport(ctx context.Context, id string) (*analyze.Report, error) {
	var doc mongoReport
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find report %s: %w", id, err)
	}
	return doc.Report, nil
}

// ListReports returns archived reports, newest first.
func (s *MongoStore) ListReports(ctx context.Context, limit int) ([]*analyze.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "report.created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	var out []*analyze.Report
	for cur.Next(ctx) {
		var doc mongoReport
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		out = append(out, doc.Report)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return out, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
