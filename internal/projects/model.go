package projects

import "time"

const (
	CategoryWeb     = "Web Development"
	CategoryMobile  = "Mobile Development"
	CategoryAIML    = "AI/ML"
	CategoryDesktop = "Desktop Application"
	CategoryOther   = "Other"

	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

var validCategories = map[string]struct{}{
	CategoryWeb:     {},
	CategoryMobile:  {},
	CategoryAIML:    {},
	CategoryDesktop: {},
	CategoryOther:   {},
}

var validStatuses = map[string]struct{}{
	StatusActive:    {},
	StatusCompleted: {},
	StatusArchived:  {},
}

func IsValidCategory(value string) bool {
	_, ok := validCategories[value]
	return ok
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

type Project struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Title           string    `bson:"title" json:"title"`
	ProjectNumber   string    `bson:"projectNumber" json:"projectNumber"`
	Description     string    `bson:"description" json:"description"`
	FullDescription string    `bson:"fullDescription" json:"fullDescription"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL        string    `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Technologies    []string  `bson:"technologies" json:"technologies"`
	LiveURL         string    `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	GithubURL       string    `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	Category        string    `bson:"category" json:"category"`
	Status          string    `bson:"status" json:"status"`
	Featured        bool      `bson:"featured" json:"featured"`
	Order           int       `bson:"order" json:"order"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Title           string   `json:"title" validate:"notblank,max=100"`
	ProjectNumber   string   `json:"projectNumber" validate:"notblank"`
	Description     string   `json:"description" validate:"notblank,max=200"`
	FullDescription string   `json:"fullDescription" validate:"notblank,max=1000"`
	ImageURL        string   `json:"imageUrl" validate:"omitempty,url"`
	VideoURL        string   `json:"videoUrl" validate:"omitempty,url"`
	Technologies    []string `json:"technologies" validate:"min=1,dive,notblank"`
	LiveURL         string   `json:"liveUrl" validate:"omitempty,url"`
	GithubURL       string   `json:"githubUrl" validate:"omitempty,url"`
	Category        string   `json:"category" validate:"notblank"`
	Status          string   `json:"status"`
	Featured        *bool    `json:"featured"`
	Order           *int     `json:"order"`
}

// UpdateRequest is a partial update: nil fields are left untouched.
type UpdateRequest struct {
	Title           *string   `json:"title" validate:"omitempty,notblank,max=100"`
	ProjectNumber   *string   `json:"projectNumber" validate:"omitempty,notblank"`
	Description     *string   `json:"description" validate:"omitempty,notblank,max=200"`
	FullDescription *string   `json:"fullDescription" validate:"omitempty,notblank,max=1000"`
	ImageURL        *string   `json:"imageUrl" validate:"omitempty,url"`
	VideoURL        *string   `json:"videoUrl" validate:"omitempty,url"`
	Technologies    *[]string `json:"technologies" validate:"omitempty,min=1,dive,notblank"`
	LiveURL         *string   `json:"liveUrl" validate:"omitempty,url"`
	GithubURL       *string   `json:"githubUrl" validate:"omitempty,url"`
	Category        *string   `json:"category"`
	Status          *string   `json:"status"`
	Featured        *bool     `json:"featured"`
	Order           *int      `json:"order"`
}

type ListFilter struct {
	Category string
	Status   string
	Featured *bool
}
