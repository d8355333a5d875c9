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
	mockService "vouch/internal/mocks/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type companyServiceFixtures struct {
	service       usecase.CompanyUsecase
	companyRepo   *mockRepo.MockCompanyRepository
	txManager     *mockRepo.MockTransactionManager
	qrcodeService *mockService.MockQRCodeService
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCompanyService(CompanyServiceParams{
		CompanyRepo:   companyRepo,
		TxManager:     txManager,
		QRCodeService: qrcodeService,
		Logger:        logger,
	})

	return companyServiceFixtures{
		service:       service,
		companyRepo:   companyRepo,
		txManager:     txManager,
		qrcodeService: qrcodeService,
	}
}

func TestCompanyService_Onboard_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewCompanyRepository().Return(mockCompanyRepo)
			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockCompanyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Company")).Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
					return profile.UserID == userID && profile.Role == entity.RoleOwner
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	company, err := fx.service.Onboard(ctx, userID, &usecase.OnboardInput{
		Name:         "Acme Dental",
		ContactEmail: "owner@acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Dental", company.Name)
	assert.Equal(t, "owner@acme.example", company.ContactEmail)
	assert.NotEqual(t, uuid.Nil, company.ID)
}

func TestCompanyService_Onboard_DuplicateProfile(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewCompanyRepository().Return(mockCompanyRepo)
			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockCompanyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Company")).Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Return(repository.ErrDuplicateProfile)

			return fn(mockFactory)
		})

	company, err := fx.service.Onboard(ctx, userID, &usecase.OnboardInput{Name: "Acme Dental"})
	require.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestCompanyService_UpdateCompany_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()
	existing := &entity.Company{ID: companyID, Name: "Old Name"}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(existing, nil)
	fx.companyRepo.EXPECT().Update(ctx, existing).Return(nil)

	newName := "New Name"
	brandColor := "#ff6600"
	company, err := fx.service.UpdateCompany(ctx, companyID, companyID, &usecase.UpdateCompanyInput{
		Name:       &newName,
		BrandColor: &brandColor,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", company.Name)
	assert.Equal(t, "#ff6600", company.BrandColor)
}

func TestCompanyService_UpdateCompany_OwnershipViolation(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	newName := "New Name"

	company, err := fx.service.UpdateCompany(ctx, uuid.New(), uuid.New(), &usecase.UpdateCompanyInput{
		Name: &newName,
	})
	require.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyOwnershipViolation))
}

func TestCompanyService_GetCompany_NotFound(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(nil, repository.ErrCompanyNotFound)

	company, err := fx.service.GetCompany(ctx, companyID)
	require.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyNotFound))
}

func TestCompanyService_SubmitQRCode_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.qrcodeService.EXPECT().GenerateSubmitQR(companyID).Return(png, nil)

	got, err := fx.service.SubmitQRCode(ctx, companyID, companyID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCompanyService_SubmitQRCode_OwnershipViolation(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()

	got, err := fx.service.SubmitQRCode(ctx, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyOwnershipViolation))
}
