package main

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/faq"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recordingCollection struct {
	filters []bson.M
	docs    []interface{}
	seen    map[string]bool
}

func (c *recordingCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f := filter.(bson.M)
	c.filters = append(c.filters, f)
	c.docs = append(c.docs, update.(bson.M)["$setOnInsert"])

	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	key := ""
	for _, v := range f {
		key = v.(string)
	}
	if c.seen[key] {
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}
	c.seen[key] = true
	return &mongo.UpdateResult{UpsertedCount: 1}, nil
}

func newTestSeeder() (*seeder, *recordingCollection, *recordingCollection) {
	faqs := &recordingCollection{}
	proj := &recordingCollection{}
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &seeder{
		faqs:     faqs,
		projects: proj,
		val:      validation.New(),
		now:      func() time.Time { return fixed },
	}, faqs, proj
}

func TestDefaultFixturesAreValid(t *testing.T) {
	fx, err := parseFixtures(defaultFixtures)
	require.NoError(t, err)
	require.NotEmpty(t, fx.FAQs)
	require.NotEmpty(t, fx.Projects)

	s, faqs, proj := newTestSeeder()
	n, err := s.seedFAQs(context.Background(), fx.FAQs)
	require.NoError(t, err)
	assert.Equal(t, len(fx.FAQs), n)

	n, err = s.seedProjects(context.Background(), fx.Projects)
	require.NoError(t, err)
	assert.Equal(t, len(fx.Projects), n)

	first := faqs.docs[0].(faq.Entry)
	assert.True(t, first.IsActive)
	assert.Equal(t, bson.M{"question": first.Question}, faqs.filters[0])

	p := proj.docs[0].(projects.Project)
	assert.Equal(t, "P-001", p.ProjectNumber)
	assert.Equal(t, projects.StatusActive, p.Status)
}

func TestSeedIsIdempotent(t *testing.T) {
	fx, err := parseFixtures(defaultFixtures)
	require.NoError(t, err)

	s, _, _ := newTestSeeder()
	_, err = s.seedFAQs(context.Background(), fx.FAQs)
	require.NoError(t, err)

	n, err := s.seedFAQs(context.Background(), fx.FAQs)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedRejectsInvalidFixtures(t *testing.T) {
	fx, err := parseFixtures([]byte(`
faqs:
  - question: "   "
    answer: something
projects:
  - title: Broken
    projectNumber: P-9
    description: d
    fullDescription: f
    technologies: [Go]
    category: Games
`))
	require.NoError(t, err)

	s, _, _ := newTestSeeder()
	_, err = s.seedFAQs(context.Background(), fx.FAQs)
	var verr *faq.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = s.seedProjects(context.Background(), fx.Projects)
	assert.ErrorIs(t, err, projects.ErrInvalidCategory)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"faqs", "projects", "all"})
	assert.NotNil(t, root.PersistentFlags().Lookup("file"))
}
