package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	memberRepo "fitstudio/database/repository/member"
	"fitstudio/models"
	"fitstudio/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrMemberNotFound = errors.New("member not found")

// MemberService manages studio member records.
type MemberService interface {
	CreateMember(ctx context.Context, member models.Member) (*models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	UpdateMember(ctx context.Context, member models.Member) (*models.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

// DefaultMemberService is the production implementation.
type DefaultMemberService struct {
	Repo memberRepo.MemberRepository
}

func (s *DefaultMemberService) CreateMember(ctx context.Context, member models.Member) (*models.Member, error) {
	if member.FirstName == "" || member.LastName == "" {
		return nil, fmt.Errorf("firstName and lastName are required")
	}
	if member.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if existing, err := s.Repo.GetByEmail(ctx, member.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("member with email %s already exists", member.Email)
	}

	if err := s.Repo.Create(ctx, &member); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("member created", zap.String("memberID", member.ID))
	return &member, nil
}

func (s *DefaultMemberService) GetMember(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	return member, nil
}

func (s *DefaultMemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.Repo.List(ctx)
}

// UpdateMember updates non-empty member fields using a partial update.
func (s *DefaultMemberService) UpdateMember(ctx context.Context, member models.Member) (*models.Member, error) {
	logger := utils.GetLogger()

	if member.ID == "" {
		return nil, fmt.Errorf("member ID is required for update")
	}

	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}
	if member.FirstName != "" {
		updateFields["firstName"] = member.FirstName
	}
	if member.LastName != "" {
		updateFields["lastName"] = member.LastName
	}
	if member.Email != "" {
		updateFields["email"] = member.Email
	}
	if member.PhoneNumber != "" {
		updateFields["phoneNumber"] = member.PhoneNumber
	}
	if member.Notes != "" {
		updateFields["notes"] = member.Notes
	}

	if len(updateFields) == 1 {
		logger.Warn("No updatable fields provided", zap.String("memberID", member.ID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(ctx, member.ID, updateFields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return s.Repo.GetByID(ctx, member.ID)
}

func (s *DefaultMemberService) DeleteMember(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
