// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitstudio/models"
)

func (r *mongoSessionRepo) ListByMember(ctx context.Context, memberID string) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"memberId": memberID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for member %s: %w", memberID, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// ListByTrainerBetween returns a trainer's non-cancelled sessions whose
// start falls in [from, to). Conflict checks widen the window themselves to
// catch sessions that start earlier but run into it.
func (r *mongoSessionRepo) ListByTrainerBetween(ctx context.Context, trainerID string, from, to time.Time) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"trainerId":   trainerID,
		"status":      bson.M{"$ne": models.SessionStatusCancelled},
		"scheduledAt": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for trainer %s: %w", trainerID, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// ListActiveStartedBefore returns scheduled or confirmed sessions whose
// start precedes the given instant. The completion sweep filters on the
// computed end time before transitioning records.
func (r *mongoSessionRepo) ListActiveStartedBefore(ctx context.Context, before time.Time) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":      bson.M{"$in": []string{models.SessionStatusScheduled, models.SessionStatusConfirmed}},
		"scheduledAt": bson.M{"$lt": before},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}
