package contact

import (
	"context"
	"strings"
	"time"

	"portfolio-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier delivers the owner notification for a new submission.
type Notifier interface {
	SendContactNotification(ctx context.Context, sub Submission) (string, error)
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Submission, error) {
	formType := strings.ToLower(strings.TrimSpace(req.FormType))
	if formType == "" {
		formType = FormTypeContact
	}

	now := time.Now().In(s.location).Truncate(time.Millisecond)
	sub := Submission{
		ID:              primitive.NewObjectID().Hex(),
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Website:         strings.TrimSpace(req.Website),
		Message:         strings.TrimSpace(req.Message),
		CompanyStage:    strings.TrimSpace(req.CompanyStage),
		Deadline:        strings.TrimSpace(req.Deadline),
		Budget:          strings.TrimSpace(req.Budget),
		ReferralSources: utils.NormalizeList(req.ReferralSources, false),
		FormType:        formType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Submission, int64, error) {
	filter.FormType = strings.ToLower(strings.TrimSpace(filter.FormType))

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Notify is a no-op when no notifier is configured.
func (s *Service) Notify(ctx context.Context, sub Submission) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendContactNotification(ctx, sub)
	return err
}
