package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"athletic-store/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoRepository implements DocumentRepository using MongoDB collections.
type mongoRepository struct {
	client *mongo.Client
	db     *mongo.Database
	logger zerolog.Logger
}

// NewMongoRepository creates a new MongoDB-backed document repository.
func NewMongoRepository(client *mongo.Client, dbName string, logger zerolog.Logger) DocumentRepository {
	return &mongoRepository{
		client: client,
		db:     client.Database(dbName),
		logger: logger.With().Str("repository", "mongo").Logger(),
	}
}

// CreateDocument inserts a document and returns its ObjectID in hex form.
func (r *mongoRepository) CreateDocument(ctx context.Context, collection string, doc model.Document) (string, error) {
	now := time.Now().UTC()
	body := doc.Clone()
	body["created_at"] = now
	body["updated_at"] = now

	result, err := r.db.Collection(collection).InsertOne(ctx, bson.M(body))
	if err != nil {
		r.logger.Error().Err(err).Str("collection", collection).Msg("failed to insert document")
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	id := stringifyID(result.InsertedID)
	r.logger.Debug().Str("collection", collection).Str("id", id).Msg("document inserted")

	return id, nil
}

// GetDocuments runs an equality find on the collection.
func (r *mongoRepository) GetDocuments(ctx context.Context, collection string, filter model.Document, limit int) ([]model.Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.db.Collection(collection).Find(ctx, query, findOptions)
	if err != nil {
		r.logger.Error().Err(err).
			Str("collection", collection).
			Int("limit", limit).
			Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		r.logger.Error().Err(err).Str("collection", collection).Msg("failed to decode documents")
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	docs := make([]model.Document, 0, len(results))
	for _, result := range results {
		docs = append(docs, model.Document(result))
	}

	return docs, nil
}

// GetDocument retrieves a single document by its hex ObjectID.
func (r *mongoRepository) GetDocument(ctx context.Context, collection, id string) (model.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrDocumentNotFound
	}

	var result bson.M
	err = r.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("collection", collection).Str("id", id).Msg("document not found")
			return nil, model.ErrDocumentNotFound
		}
		r.logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return model.Document(result), nil
}

func (r *mongoRepository) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (r *mongoRepository) Name() string {
	return r.db.Name()
}

func (r *mongoRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *mongoRepository) Close(ctx context.Context) error {
	if err := r.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

func stringifyID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
