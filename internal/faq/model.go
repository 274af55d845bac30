package faq

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"portfolio-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryGeneral   = "General"
	CategoryTechnical = "Technical"
	CategoryServices  = "Services"
	CategoryPortfolio = "Portfolio"
	CategoryContact   = "Contact"
	CategoryPricing   = "Pricing"

	// categoryAll is the frontend's "no filter" sentinel.
	categoryAll = "all"

	previewLength = 100
)

var validCategories = map[string]struct{}{
	CategoryGeneral:   {},
	CategoryTechnical: {},
	CategoryServices:  {},
	CategoryPortfolio: {},
	CategoryContact:   {},
	CategoryPricing:   {},
}

func IsValidCategory(value string) bool {
	_, ok := validCategories[value]
	return ok
}

type Entry struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	Category  string    `bson:"category" json:"category"`
	Tags      []string  `bson:"tags" json:"tags"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	Order     int       `bson:"order" json:"order"`
	ViewCount int       `bson:"viewCount" json:"viewCount"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// QuestionPreview shortens long questions for list views.
func (e Entry) QuestionPreview() string {
	runes := []rune(e.Question)
	if len(runes) <= previewLength {
		return e.Question
	}
	return string(runes[:previewLength]) + "..."
}

func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return json.Marshal(struct {
		plain
		QuestionPreview string `json:"questionPreview"`
	}{
		plain:           plain(e),
		QuestionPreview: e.QuestionPreview(),
	})
}

type CreateRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Order    *int     `json:"order"`
}

// NewEntry builds a validated, active entry with a fresh id from req.
func NewEntry(req CreateRequest, now time.Time) (Entry, error) {
	order := 0
	if req.Order != nil {
		order = *req.Order
	}
	item := Entry{
		ID:        primitive.NewObjectID().Hex(),
		Question:  strings.TrimSpace(req.Question),
		Answer:    strings.TrimSpace(req.Answer),
		Category:  normalizeCategory(req.Category),
		Tags:      normalizeTags(req.Tags),
		IsActive:  true,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := Validate(item); err != nil {
		return Entry{}, err
	}
	return item, nil
}

// Patch holds the fields of a partial update. Fields that were not sent keep
// their stored value.
type Patch struct {
	Question Optional[string]   `json:"question"`
	Answer   Optional[string]   `json:"answer"`
	Category Optional[string]   `json:"category"`
	Tags     Optional[[]string] `json:"tags"`
	Order    Optional[int]      `json:"order"`
	IsActive Optional[bool]     `json:"isActive"`
}

func (p Patch) IsEmpty() bool {
	return !p.Question.Set && !p.Answer.Set && !p.Category.Set &&
		!p.Tags.Set && !p.Order.Set && !p.IsActive.Set
}

func (p Patch) normalized() Patch {
	if p.Question.Set {
		p.Question.Value = strings.TrimSpace(p.Question.Value)
	}
	if p.Answer.Set {
		p.Answer.Value = strings.TrimSpace(p.Answer.Value)
	}
	if p.Category.Set {
		p.Category.Value = normalizeCategory(p.Category.Value)
	}
	if p.Tags.Set {
		p.Tags.Value = normalizeTags(p.Tags.Value)
	}
	return p
}

// Apply merges the present fields onto e.
func (p Patch) Apply(e Entry) Entry {
	if v, ok := p.Question.Get(); ok {
		e.Question = v
	}
	if v, ok := p.Answer.Get(); ok {
		e.Answer = v
	}
	if v, ok := p.Category.Get(); ok {
		e.Category = v
	}
	if v, ok := p.Tags.Get(); ok {
		e.Tags = append([]string(nil), v...)
	}
	if v, ok := p.Order.Get(); ok {
		e.Order = v
	}
	if v, ok := p.IsActive.Get(); ok {
		e.IsActive = v
	}
	return e
}

type UpdateRequest struct {
	ID string `json:"id"`
	Patch
}

// Query selects one of the read paths. A non-empty Search wins over Category.
type Query struct {
	Search   string
	Category string
	Page     int64
	Limit    int64
}

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 50
)

func (q Query) normalized() Query {
	q.Search = strings.TrimSpace(q.Search)
	q.Category = strings.TrimSpace(q.Category)
	if strings.EqualFold(q.Category, categoryAll) || q.Search != "" {
		q.Category = ""
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// Skip is only meaningful when offsetFits reports true.
func (q Query) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// offsetFits reports whether (Page-1)*Limit is representable as an int64.
// Both fields must already be positive.
func (q Query) offsetFits() bool {
	return q.Page-1 <= math.MaxInt64/q.Limit
}

// CategoryCount is the number of active entries in one category.
type CategoryCount struct {
	Category string `bson:"_id" json:"_id"`
	Count    int64  `bson:"count" json:"count"`
}

type Result struct {
	Items []Entry
	Total int64
	Page  int64
	Limit int64
}

func normalizeCategory(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return CategoryGeneral
	}
	return value
}

func normalizeTags(tags []string) []string {
	return utils.NormalizeList(tags, true)
}
