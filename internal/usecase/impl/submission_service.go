package impl

import (
	"context"
	"fmt"
	"log/slog"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type submissionService struct {
	companyRepo repository.CompanyRepository
	reviewRepo  repository.ReviewRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	ReviewRepo  repository.ReviewRepository
	Mailer      service.Mailer `optional:"true"`
	Logger      *slog.Logger
}

// NewSubmissionService creates the public submission intake service.
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		companyRepo: params.CompanyRepo,
		reviewRepo:  params.ReviewRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

// SubmitReview stores a customer submission for moderation. The payload can
// never choose its own status or featured flag; both are fixed by the entity
// constructor. The company contact is notified after the insert, and a
// notification failure never fails the submission.
func (s *submissionService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	rating := input.Rating
	review := entity.NewReview(company.ID, input.VideoID, input.ReviewerName, input.ReviewerEmail, input.ReviewerAvatar, &rating, input.Comment, input.VideoURL)

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to store submission")
	}

	s.logger.Info("Review submitted", "companyID", company.ID, "reviewID", review.ID)

	s.notify(ctx, company, review)

	return review, nil
}

func (s *submissionService) notify(ctx context.Context, company *entity.Company, review *entity.Review) {
	if s.mailer == nil || company.ContactEmail == "" {
		return
	}

	rating := 0
	if review.Rating != nil {
		rating = *review.Rating
	}

	msg := &service.Message{
		To:      company.ContactEmail,
		Subject: fmt.Sprintf("New review for %s", company.Name),
		TextBody: fmt.Sprintf(
			"%s left a %d-star review:\n\n%s\n\nIt is waiting for your approval in the dashboard.",
			review.ReviewerName, rating, review.Comment,
		),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("Submission notification failed", "companyID", company.ID, "reviewID", review.ID, "error", err)
	}
}
