package cards

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "cards"

// ErrNotFound signals that no card matched the lookup.
var ErrNotFound = errors.New("card not found")

// Repository exposes card persistence operations over the Mongo collection.
type Repository struct {
	col *mongo.Collection
}

// NewRepository constructs a cards repo bound to the provided database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique (game, remoteId) key plus the name-lookup
// indexes. The unique index is the real duplicate guard for concurrent
// upserts; application code never re-checks.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "game", Value: 1}, {Key: "remoteId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "game", Value: 1}, {Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "game", Value: 1}, {Key: "cleanName", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create card indexes: %w", err)
	}
	return nil
}

// Count returns the number of cards matching the filter.
func (r *Repository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}

// Find returns the page window matching the filter, ordered by name ascending.
func (r *Repository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]Card, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Card, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByRemoteID loads the full card record for one (game, remoteId) pair.
func (r *Repository) FindByRemoteID(ctx context.Context, game, remoteID string) (*Card, error) {
	var card Card
	err := r.col.FindOne(ctx, DetailFilter(game, remoteID)).Decode(&card)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Upsert overwrites the card stored under its (game, remoteId) key, inserting
// when absent. Concurrent upserts for the same key collapse onto one document
// through the unique index.
func (r *Repository) Upsert(ctx context.Context, card *Card) error {
	filter := DetailFilter(card.Game, card.RemoteID)
	update := bson.M{"$set": card}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
