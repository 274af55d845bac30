package faq

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("faq not found")

type Service struct {
	repo     Repository
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) timestamp() time.Time {
	// Mongo stores milliseconds; truncating keeps returned and stored values equal.
	return s.now().In(s.location).Truncate(time.Millisecond)
}

func (s *Service) List(ctx context.Context, page, limit int64) (Result, error) {
	return s.Query(ctx, Query{Page: page, Limit: limit})
}

func (s *Service) FilterByCategory(ctx context.Context, category string, page, limit int64) (Result, error) {
	return s.Query(ctx, Query{Category: category, Page: page, Limit: limit})
}

func (s *Service) Search(ctx context.Context, term string, page, limit int64) (Result, error) {
	return s.Query(ctx, Query{Search: term, Page: page, Limit: limit})
}

// Query runs whichever read path q selects and counts the total under the
// same predicate.
func (s *Service) Query(ctx context.Context, q Query) (Result, error) {
	q = q.normalized()
	res := Result{Items: []Entry{}, Page: q.Page, Limit: q.Limit}

	if q.Category != "" && !IsValidCategory(q.Category) {
		return res, nil
	}

	// A page past the largest representable offset cannot hold any items.
	if !q.offsetFits() {
		total, err := s.repo.Count(ctx, q)
		if err != nil {
			return Result{}, err
		}
		res.Total = total
		return res, nil
	}

	items, err := s.repo.List(ctx, q)
	if err != nil {
		return Result{}, err
	}
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return Result{}, err
	}
	res.Items = items
	res.Total = total
	return res, nil
}

// Categories counts active entries per category, ordered by name. Categories
// without active entries are omitted.
func (s *Service) Categories(ctx context.Context) ([]CategoryCount, error) {
	return s.repo.CountByCategory(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	return item, translate(err)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Entry, error) {
	item, err := NewEntry(req, s.timestamp())
	if err != nil {
		return Entry{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return Entry{}, err
	}
	return item, nil
}

// Update merges the present patch fields into the stored entry. Deactivating
// an entry is an update of IsActive to false.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Entry, error) {
	id = strings.TrimSpace(id)
	patch = patch.normalized()
	if err := ValidatePatch(patch); err != nil {
		return Entry{}, err
	}
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, patch, s.timestamp())
	return updated, translate(err)
}

// Deactivate is shorthand for Update(ctx, id, Patch{IsActive: Some(false)}).
// It is not a separate store operation.
func (s *Service) Deactivate(ctx context.Context, id string) (Entry, error) {
	return s.Update(ctx, id, Patch{IsActive: Some(false)})
}

func (s *Service) Delete(ctx context.Context, id string) (Entry, error) {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	return deleted, translate(err)
}

func (s *Service) IncrementViewCount(ctx context.Context, id string) (Entry, error) {
	updated, err := s.repo.IncrementViewCount(ctx, strings.TrimSpace(id), s.timestamp())
	return updated, translate(err)
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
