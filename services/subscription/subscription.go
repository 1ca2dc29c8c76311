package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	subscriptionRepo "fitstudio/database/repository/subscription"
	"fitstudio/models"
	"fitstudio/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrOverlappingPlan      = errors.New("member already has a plan covering this period")
)

// SubscriptionService manages member plans.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	ListMemberSubscriptions(ctx context.Context, memberID string) ([]models.Subscription, error)
	CancelSubscription(ctx context.Context, id string) error
	ExpireLapsed(ctx context.Context, now time.Time) (int, error)
}

// DefaultSubscriptionService is the production implementation.
type DefaultSubscriptionService struct {
	Repo subscriptionRepo.SubscriptionRepository
}

func (s *DefaultSubscriptionService) CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	if sub.MemberID == "" {
		return nil, fmt.Errorf("memberId is required")
	}
	if sub.Plan == "" {
		return nil, fmt.Errorf("plan is required")
	}
	if sub.StartDate.IsZero() || sub.EndDate.IsZero() {
		return nil, fmt.Errorf("startDate and endDate are required")
	}
	if !sub.EndDate.After(sub.StartDate) {
		return nil, fmt.Errorf("endDate must be after startDate")
	}

	// One covering plan per member at a time.
	if existing, err := s.Repo.GetCoveringSubscription(ctx, sub.MemberID, sub.StartDate); err == nil && existing != nil {
		return nil, ErrOverlappingPlan
	}

	if err := s.Repo.Create(ctx, &sub); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("subscription created",
		zap.String("subscriptionID", sub.ID),
		zap.String("memberID", sub.MemberID),
		zap.String("plan", sub.Plan))
	return &sub, nil
}

func (s *DefaultSubscriptionService) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	return sub, nil
}

func (s *DefaultSubscriptionService) ListMemberSubscriptions(ctx context.Context, memberID string) ([]models.Subscription, error) {
	return s.Repo.ListByMember(ctx, memberID)
}

func (s *DefaultSubscriptionService) CancelSubscription(ctx context.Context, id string) error {
	err := s.Repo.UpdateWithDocument(ctx, id, map[string]any{
		"status":    models.SubscriptionCancelled,
		"updatedAt": time.Now(),
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrSubscriptionNotFound
	}
	return err
}

// ExpireLapsed marks active subscriptions whose end date has passed as
// expired, returning the number of transitions.
func (s *DefaultSubscriptionService) ExpireLapsed(ctx context.Context, now time.Time) (int, error) {
	subs, err := s.Repo.ListLapsedActive(ctx, now)
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, sub := range subs {
		if err := s.Repo.UpdateWithDocument(ctx, sub.ID, map[string]any{
			"status":    models.SubscriptionExpired,
			"updatedAt": now,
		}); err != nil {
			return expired, fmt.Errorf("failed to expire subscription %s: %w", sub.ID, err)
		}
		expired++
	}
	return expired, nil
}
