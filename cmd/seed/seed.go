package main

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/faq"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// upserter is the slice of *mongo.Collection the seeder needs.
type upserter interface {
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type seeder struct {
	faqs     upserter
	projects upserter
	val      *validation.Validator
	now      func() time.Time
}

// seedFAQs inserts entries whose question is not stored yet. Existing entries
// are left untouched so edits made through the API survive a re-seed.
func (s *seeder) seedFAQs(ctx context.Context, items []faqFixture) (int, error) {
	inserted := 0
	for _, fx := range items {
		entry, err := faq.NewEntry(fx.request(), s.now())
		if err != nil {
			return inserted, fmt.Errorf("faq %q: %w", fx.Question, err)
		}
		res, err := s.faqs.UpdateOne(ctx,
			bson.M{"question": entry.Question},
			bson.M{"$setOnInsert": entry},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return inserted, fmt.Errorf("faq %q: %w", fx.Question, err)
		}
		if res.UpsertedCount > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func (s *seeder) seedProjects(ctx context.Context, items []projectFixture) (int, error) {
	inserted := 0
	for _, fx := range items {
		req := fx.request()
		if err := s.val.Struct(req); err != nil {
			return inserted, fmt.Errorf("project %s: %w", fx.ProjectNumber, err)
		}
		project, err := projects.NewProject(req, s.now())
		if err != nil {
			return inserted, fmt.Errorf("project %s: %w", fx.ProjectNumber, err)
		}
		res, err := s.projects.UpdateOne(ctx,
			bson.M{"projectNumber": project.ProjectNumber},
			bson.M{"$setOnInsert": project},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return inserted, fmt.Errorf("project %s: %w", fx.ProjectNumber, err)
		}
		if res.UpsertedCount > 0 {
			inserted++
		}
	}
	return inserted, nil
}
