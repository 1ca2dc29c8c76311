// File: database/repository/session/indexes.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the sessions collection.
func (r *mongoSessionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on session ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for trainer schedules (primary conflict-check query)
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().SetName("trainer_scheduled_idx"),
		},
		// Member history listing
		{
			Keys:    bson.D{{Key: "memberId", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().SetName("member_scheduled_idx"),
		},
		// Completion sweep scans active sessions by start time
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().SetName("status_scheduled_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}
