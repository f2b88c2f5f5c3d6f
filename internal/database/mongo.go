package database

import (
	"context"
	"fmt"
	"time"

	"portfolioData/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// coreFields are owned by the generator; anything else on a stored
// document (uploaded asset metadata, curation flags) is preserved.
var coreFields = []string{"id", "title", "year", "client", "type", "description", "assets"}

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   *zap.Logger
}

func NewMongoDB(ctx context.Context, uri, dbName string, logger *zap.Logger) (*MongoDB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("uri", uri), zap.String("database", dbName))

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
		logger:   logger,
	}, nil
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

func recordFilter(id string) bson.M {
	return bson.M{"id": id}
}

func isCoreField(key string) bool {
	for _, f := range coreFields {
		if key == f {
			return true
		}
	}
	return false
}

// mergeDocument overlays the core fields of fresh onto existing and
// returns the merged document plus the number of preserved extra fields.
func mergeDocument(existing, fresh bson.M) (bson.M, int) {
	merged := bson.M{}
	extra := 0
	for key, value := range existing {
		merged[key] = value
		if key != "_id" && !isCoreField(key) {
			extra++
		}
	}
	for _, field := range coreFields {
		if value, ok := fresh[field]; ok {
			merged[field] = value
		}
	}
	return merged, extra
}

func toDocument(record models.Record) (bson.M, error) {
	data, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record %s: %w", record.ID, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", record.ID, err)
	}
	return doc, nil
}

// UpsertRecord stores record keyed by id and reports whether a document
// already existed.
func (m *MongoDB) UpsertRecord(ctx context.Context, collectionName string, record models.Record) (bool, error) {
	collection := m.Database.Collection(collectionName)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := recordFilter(record.ID)

	fresh, err := toDocument(record)
	if err != nil {
		return false, err
	}

	var existing bson.M
	err = collection.FindOne(ctx, filter).Decode(&existing)

	wasUpdate := false
	finalDoc := fresh
	switch {
	case err == nil:
		wasUpdate = true
		var extra int
		finalDoc, extra = mergeDocument(existing, fresh)
		m.logger.Debug("Updating record",
			zap.String("id", record.ID),
			zap.Int("preserved_fields", extra))
	case err == mongo.ErrNoDocuments:
		m.logger.Debug("Inserting record", zap.String("id", record.ID))
	default:
		return false, fmt.Errorf("failed to check existing record %s: %w", record.ID, err)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, filter, finalDoc, opts); err != nil {
		return false, fmt.Errorf("failed to upsert record %s: %w", record.ID, err)
	}
	return wasUpdate, nil
}

// PublishRecords upserts every record. With dropExisting the collection is
// emptied first so it mirrors the dataset exactly.
func (m *MongoDB) PublishRecords(ctx context.Context, collectionName string, records []models.Record, dropExisting bool) (inserted, updated int, err error) {
	if dropExisting {
		dropCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := m.Database.Collection(collectionName).Drop(dropCtx); err != nil {
			m.logger.Warn("Failed to drop collection", zap.String("collection", collectionName), zap.Error(err))
		}
		cancel()
	}

	for _, record := range records {
		wasUpdate, err := m.UpsertRecord(ctx, collectionName, record)
		if err != nil {
			return inserted, updated, err
		}
		if wasUpdate {
			updated++
		} else {
			inserted++
		}
	}

	m.logger.Info("Published records",
		zap.String("collection", collectionName),
		zap.Int("inserted", inserted),
		zap.Int("updated", updated))
	return inserted, updated, nil
}

// fetchSort matches the persisted dataset order.
func fetchSort() bson.D {
	return bson.D{{Key: "year", Value: -1}, {Key: "id", Value: -1}}
}

// FetchRecords returns every stored record in dataset order.
func (m *MongoDB) FetchRecords(ctx context.Context, collectionName string) ([]models.Record, error) {
	collection := m.Database.Collection(collectionName)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetSort(fetchSort()))
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Record
	for cursor.Next(ctx) {
		var r models.Record
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		if r.Assets == nil {
			r.Assets = []string{}
		}
		records = append(records, r)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	m.logger.Info("Fetched records", zap.String("collection", collectionName), zap.Int("count", len(records)))
	return records, nil
}

func (m *MongoDB) ListCollections(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	names, err := m.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func hasCollection(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// EnsureCollection fails when collectionName does not exist, so a mistyped
// name is reported instead of reading back an empty dataset.
func (m *MongoDB) EnsureCollection(ctx context.Context, collectionName string) error {
	names, err := m.ListCollections(ctx)
	if err != nil {
		return err
	}
	if !hasCollection(names, collectionName) {
		return fmt.Errorf("collection %s not found in database %s (available: %v)", collectionName, m.Database.Name(), names)
	}
	return nil
}
