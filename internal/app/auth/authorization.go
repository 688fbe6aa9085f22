package auth

import (
	"context"
	"errors"

	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/logger"
)

// ErrNotOwnProfile is returned when an admin edits another admin's profile
var ErrNotOwnProfile = apperrors.NewForbiddenError("admins may only update their own profile")

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	adminRepo repositories.IAdminRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(adminRepo repositories.IAdminRepository) *AuthorizationService {
	return &AuthorizationService{
		adminRepo: adminRepo,
	}
}

// IsAdmin reports whether userID still belongs to an admin account.
// Tokens outlive deleted accounts, so a valid admin token is not enough.
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	_, err := s.adminRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return false, nil
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting admin by ID in IsAdmin")
		return false, err
	}
	return true, nil
}

// ValidateAdmin returns a forbidden error unless userID is an existing admin
func (s *AuthorizationService) ValidateAdmin(ctx context.Context, userID int64) error {
	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.NewForbiddenError("admin account no longer exists")
	}
	return nil
}

// ValidateProfileUpdate allows requesterID to update the profile of targetID
// only when both are the same existing admin.
func (s *AuthorizationService) ValidateProfileUpdate(ctx context.Context, requesterID, targetID int64) error {
	if requesterID != targetID {
		return ErrNotOwnProfile
	}
	return s.ValidateAdmin(ctx, requesterID)
}
