package course

import (
	"context"
	"time"

	"github.com/trezcool/darasa/core"
)

type Course struct {
	ID           int       `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	InstructorID int       `db:"instructor_id" json:"instructor_id"`
	Price        float64   `db:"price" json:"price"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"` // UTC
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"` // UTC
}

// Info is a Course joined with its instructor's username, as shown in listings.
type Info struct {
	ID          int     `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Instructor  string  `db:"instructor" json:"instructor"`
	Price       float64 `db:"price" json:"price"`
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	InstructorID int     `json:"instructor_id" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
}

func (nc *NewCourse) Validate(ctx context.Context, svc *Service) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)

	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	return svc.checkUniqueness(ctx, nc.Title)
}

// QueryFilter narrows course listings.
// Search does a case-insensitive substring match on Course.Title.
type QueryFilter struct {
	Search string
}
