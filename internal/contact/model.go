package contact

import "time"

const (
	FormTypeContact = "contact"
	FormTypeProject = "project"
)

type Submission struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	FullName        string    `bson:"fullName" json:"fullName"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Website         string    `bson:"website,omitempty" json:"website,omitempty"`
	Message         string    `bson:"message,omitempty" json:"message,omitempty"`
	CompanyStage    string    `bson:"companyStage,omitempty" json:"companyStage,omitempty"`
	Deadline        string    `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Budget          string    `bson:"budget,omitempty" json:"budget,omitempty"`
	ReferralSources []string  `bson:"referralSources" json:"referralSources"`
	FormType        string    `bson:"formType" json:"formType"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	FullName        string   `json:"fullName" validate:"notblank,max=200"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"omitempty,phone"`
	Website         string   `json:"website" validate:"omitempty,url"`
	Message         string   `json:"message" validate:"max=5000"`
	CompanyStage    string   `json:"companyStage" validate:"max=200"`
	Deadline        string   `json:"deadline" validate:"max=200"`
	Budget          string   `json:"budget" validate:"max=200"`
	ReferralSources []string `json:"referralSources" validate:"max=20,dive,max=100"`
	FormType        string   `json:"formType" validate:"omitempty,max=50"`
}

type ListFilter struct {
	FormType string
}
