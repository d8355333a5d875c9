package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	mockRepo "vouch/internal/mocks/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenantServiceFixtures struct {
	service     usecase.TenantUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestTenantService(t *testing.T) tenantServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewTenantService(TenantServiceParams{
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return tenantServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
	}
}

func TestTenantService_ResolveTenant_Success(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	profile := &entity.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
		Role:      entity.RoleOwner,
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	resolved, err := fx.service.ResolveTenant(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, companyID, resolved.CompanyID)
}

func TestTenantService_ResolveTenant_NoProfile(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	resolved, err := fx.service.ResolveTenant(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrNoTenant))
}

func TestTenantService_ResolveTenant_LookupFailureFailsClosed(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, errors.New("connection reset"))

	resolved, err := fx.service.ResolveTenant(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrNoTenant))
}
