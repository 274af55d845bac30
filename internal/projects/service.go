package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound            = errors.New("project not found")
	ErrProjectNumberExists = errors.New("project number already exists")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidStatus       = errors.New("invalid status")
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Project, error) {
	item, err := NewProject(req, time.Now().In(s.location).Truncate(time.Millisecond))
	if err != nil {
		return Project{}, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Project{}, ErrProjectNumberExists
		}
		return Project{}, err
	}
	return item, nil
}

// NewProject normalizes req into a project with defaults applied. Struct tag
// validation is the caller's job; category and status are checked here.
func NewProject(req CreateRequest, now time.Time) (Project, error) {
	category := strings.TrimSpace(req.Category)
	if !IsValidCategory(category) {
		return Project{}, ErrInvalidCategory
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = StatusActive
	}
	if !IsValidStatus(status) {
		return Project{}, ErrInvalidStatus
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	item := Project{
		ID:              primitive.NewObjectID().Hex(),
		Title:           strings.TrimSpace(req.Title),
		ProjectNumber:   strings.TrimSpace(req.ProjectNumber),
		Description:     strings.TrimSpace(req.Description),
		FullDescription: strings.TrimSpace(req.FullDescription),
		ImageURL:        strings.TrimSpace(req.ImageURL),
		VideoURL:        strings.TrimSpace(req.VideoURL),
		Technologies:    utils.NormalizeList(req.Technologies, false),
		LiveURL:         strings.TrimSpace(req.LiveURL),
		GithubURL:       strings.TrimSpace(req.GithubURL),
		Category:        category,
		Status:          status,
		Featured:        featured,
		Order:           order,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Project, error) {
	id = strings.TrimSpace(id)
	set, err := updateSet(req)
	if err != nil {
		return Project{}, err
	}
	set["updatedAt"] = time.Now().In(s.location).Truncate(time.Millisecond)

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return Project{}, ErrProjectNumberExists
		}
		return Project{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Project, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func updateSet(req UpdateRequest) (bson.M, error) {
	set := bson.M{}
	setString := func(key string, v *string) {
		if v != nil {
			set[key] = strings.TrimSpace(*v)
		}
	}
	setString("title", req.Title)
	setString("projectNumber", req.ProjectNumber)
	setString("description", req.Description)
	setString("fullDescription", req.FullDescription)
	setString("imageUrl", req.ImageURL)
	setString("videoUrl", req.VideoURL)
	setString("liveUrl", req.LiveURL)
	setString("githubUrl", req.GithubURL)

	if req.Technologies != nil {
		set["technologies"] = utils.NormalizeList(*req.Technologies, false)
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if !IsValidCategory(category) {
			return nil, ErrInvalidCategory
		}
		set["category"] = category
	}
	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if !IsValidStatus(status) {
			return nil, ErrInvalidStatus
		}
		set["status"] = status
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}
	return set, nil
}
