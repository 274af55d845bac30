package welcome

import "time"

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Name    string `json:"name" validate:"notblank,max=100"`
	Message string `json:"message" validate:"notblank,max=1000"`
}
