package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type profileRepository interface {
	UpdateProfile(ctx context.Context, id string, fields []models.ProfileField) (int64, error)
}

// ProfileService applies partial updates to student rows.
type ProfileService struct {
	repo          profileRepository
	logger        *zap.Logger
	hashPasswords bool
}

// NewProfileService constructs the profile service. When hashPasswords is set
// a supplied password is stored as a bcrypt hash.
func NewProfileService(repo profileRepository, logger *zap.Logger, hashPasswords bool) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, logger: logger, hashPasswords: hashPasswords}
}

// UpdateProfile writes the non-empty fields of req in one statement.
func (s *ProfileService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	id := strings.TrimSpace(string(req.ID))
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "User ID is required")
	}
	fields := req.Fields()
	if len(fields) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}

	if s.hashPasswords {
		for i := range fields {
			if fields[i].Column != "password" {
				continue
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(fields[i].Value), bcrypt.DefaultCost)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
			}
			fields[i].Value = string(hash)
		}
	}

	affected, err := s.repo.UpdateProfile(ctx, id, fields)
	if err != nil {
		return appErrors.Storage(err, "Database update failed")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, field.Column)
	}
	s.logger.Info("profile updated", zap.String("student_row", id), zap.Strings("columns", columns))
	return nil
}
