// File: database/repository/subscription/subscription.go
package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitstudio/database"
	"fitstudio/models"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	GetByID(ctx context.Context, id string) (*models.Subscription, error)
	ListByMember(ctx context.Context, memberID string) ([]models.Subscription, error)
	GetCoveringSubscription(ctx context.Context, memberID string, at time.Time) (*models.Subscription, error)
	ListLapsedActive(ctx context.Context, before time.Time) ([]models.Subscription, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type mongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new MongoDB SubscriptionRepository.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	return &mongoSubscriptionRepo{
		coll: database.Database().Collection("subscriptions"),
	}
}

func (r *mongoSubscriptionRepo) Create(ctx context.Context, sub *models.Subscription) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Status == "" {
		sub.Status = models.SubscriptionActive
	}

	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to insert subscription: %w", err)
	}
	return nil
}

func (r *mongoSubscriptionRepo) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sub models.Subscription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoSubscriptionRepo) ListByMember(ctx context.Context, memberID string) ([]models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"memberId": memberID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions for member %s: %w", memberID, err)
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode subscriptions: %w", err)
	}
	return subs, nil
}

// GetCoveringSubscription returns the member's active subscription whose
// date range contains the given instant, or mongo.ErrNoDocuments.
func (r *mongoSubscriptionRepo) GetCoveringSubscription(ctx context.Context, memberID string, at time.Time) (*models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"memberId":  memberID,
		"status":    models.SubscriptionActive,
		"startDate": bson.M{"$lte": at},
		"endDate":   bson.M{"$gt": at},
	}
	var sub models.Subscription
	if err := r.coll.FindOne(ctx, filter).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListLapsedActive returns subscriptions still marked active whose end
// date precedes the given instant.
func (r *mongoSubscriptionRepo) ListLapsedActive(ctx context.Context, before time.Time) ([]models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":  models.SubscriptionActive,
		"endDate": bson.M{"$lt": before},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list lapsed subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode subscriptions: %w", err)
	}
	return subs, nil
}

func (r *mongoSubscriptionRepo) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update subscription %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSubscriptionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete subscription %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
