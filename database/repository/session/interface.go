// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"time"

	"fitstudio/database"
	"fitstudio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	ListByMember(ctx context.Context, memberID string) ([]models.Session, error)
	ListByTrainerBetween(ctx context.Context, trainerID string, from, to time.Time) ([]models.Session, error)
	ListActiveStartedBefore(ctx context.Context, before time.Time) ([]models.Session, error)
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{
		coll: database.Database().Collection("sessions"),
	}
}
