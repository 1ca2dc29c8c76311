package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	trainerRepo "fitstudio/database/repository/trainer"
	"fitstudio/models"
	"fitstudio/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrTrainerNotFound = errors.New("trainer not found")

// TrainerService manages trainer records.
type TrainerService interface {
	CreateTrainer(ctx context.Context, trainer models.Trainer) (*models.Trainer, error)
	GetTrainer(ctx context.Context, id string) (*models.Trainer, error)
	ListTrainers(ctx context.Context, activeOnly bool) ([]models.Trainer, error)
	UpdateTrainer(ctx context.Context, trainer models.Trainer) (*models.Trainer, error)
	SetTrainerActive(ctx context.Context, id string, active bool) error
	DeleteTrainer(ctx context.Context, id string) error
}

// DefaultTrainerService is the production implementation.
type DefaultTrainerService struct {
	Repo trainerRepo.TrainerRepository
}

func (s *DefaultTrainerService) CreateTrainer(ctx context.Context, trainer models.Trainer) (*models.Trainer, error) {
	if trainer.FirstName == "" || trainer.LastName == "" {
		return nil, fmt.Errorf("firstName and lastName are required")
	}
	trainer.Active = true

	if err := s.Repo.Create(ctx, &trainer); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("trainer created", zap.String("trainerID", trainer.ID))
	return &trainer, nil
}

func (s *DefaultTrainerService) GetTrainer(ctx context.Context, id string) (*models.Trainer, error) {
	trainer, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to load trainer: %w", err)
	}
	return trainer, nil
}

func (s *DefaultTrainerService) ListTrainers(ctx context.Context, activeOnly bool) ([]models.Trainer, error) {
	return s.Repo.List(ctx, activeOnly)
}

// UpdateTrainer updates non-empty trainer fields using a partial update.
func (s *DefaultTrainerService) UpdateTrainer(ctx context.Context, trainer models.Trainer) (*models.Trainer, error) {
	if trainer.ID == "" {
		return nil, fmt.Errorf("trainer ID is required for update")
	}

	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}
	if trainer.FirstName != "" {
		updateFields["firstName"] = trainer.FirstName
	}
	if trainer.LastName != "" {
		updateFields["lastName"] = trainer.LastName
	}
	if trainer.Email != "" {
		updateFields["email"] = trainer.Email
	}
	if trainer.PhoneNumber != "" {
		updateFields["phoneNumber"] = trainer.PhoneNumber
	}
	if trainer.Specialties != nil {
		updateFields["specialties"] = trainer.Specialties
	}

	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(ctx, trainer.ID, updateFields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to update trainer: %w", err)
	}
	return s.Repo.GetByID(ctx, trainer.ID)
}

// SetTrainerActive toggles whether a trainer can receive new bookings.
// Existing sessions are left untouched.
func (s *DefaultTrainerService) SetTrainerActive(ctx context.Context, id string, active bool) error {
	err := s.Repo.UpdateWithDocument(ctx, id, map[string]any{
		"active":    active,
		"updatedAt": time.Now(),
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrTrainerNotFound
	}
	return err
}

func (s *DefaultTrainerService) DeleteTrainer(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("failed to delete trainer: %w", err)
	}
	return nil
}
