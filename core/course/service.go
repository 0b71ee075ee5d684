package course

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound    = errors.New("course not found")
	ErrTitleExists = errors.New("a course with this title already exists")
)

type (
	Repository interface {
		CheckTitleUniqueness(ctx context.Context, title string) error
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		// QueryAllCourses joins each course with its instructor's username,
		// in insertion order. QueryFilter.Search narrows on the title.
		QueryAllCourses(ctx context.Context, filter QueryFilter) ([]Info, error)
		QueryCoursesByInstructor(ctx context.Context, instructorID int) ([]Course, error)
		GetCourseByID(ctx context.Context, id int) (Course, error)
		GetCourseInfo(ctx context.Context, id int) (Info, error)
		DeleteCoursesByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(ctx context.Context, title string) error {
	if err := svc.repo.CheckTitleUniqueness(ctx, title); err != nil {
		if err == ErrTitleExists {
			return core.NewValidationError(err, core.FieldError{Field: "title", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	if err := nc.Validate(ctx, svc); err != nil {
		return Course{}, err
	}

	now := time.Now().UTC()
	crs := Course{
		Title:        nc.Title,
		Description:  nc.Description,
		InstructorID: nc.InstructorID,
		Price:        nc.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) QueryAll(ctx context.Context, filter QueryFilter) ([]Info, error) {
	filter.Search = core.CleanString(filter.Search)
	return svc.repo.QueryAllCourses(ctx, filter)
}

func (svc *Service) QueryByInstructor(ctx context.Context, instructorID int) ([]Course, error) {
	return svc.repo.QueryCoursesByInstructor(ctx, instructorID)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

// GetInfo returns the joined detail view of one course.
func (svc *Service) GetInfo(ctx context.Context, id int) (Info, error) {
	return svc.repo.GetCourseInfo(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteCoursesByID(ctx, ids...)
}
