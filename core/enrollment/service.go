package enrollment

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound        = errors.New("enrollment not found")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
	ErrNoEnrollments   = errors.New("no students are enrolled in this course")

	errProgressRange = fmt.Errorf("progress must be between %d and %d", MinProgress, MaxProgress)
)

type (
	Repository interface {
		Enroll(ctx context.Context, studentID, courseID int) (Enrollment, error)
		// QueryForStudent joins each of the student's enrollments with its
		// course metadata, in enrollment order.
		QueryForStudent(ctx context.Context, studentID int) ([]StudentCourse, error)
		GetEnrollment(ctx context.Context, studentID, courseID int) (Enrollment, error)
		SetProgress(ctx context.Context, studentID, courseID, progress int) error
		// SetProgressForCourse updates every enrollment of the course in one
		// transaction and reports the number of rows touched.
		SetProgressForCourse(ctx context.Context, courseID, progress int) (int, error)
		CountForCourse(ctx context.Context, courseID int) (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func checkProgress(progress int) error {
	if progress < MinProgress || progress > MaxProgress {
		return core.NewValidationError(errProgressRange, core.FieldError{Field: "progress", Error: errProgressRange.Error()})
	}
	return nil
}

// Enroll records the (student, course) pair; at most one may exist.
func (svc *Service) Enroll(ctx context.Context, studentID, courseID int) (Enrollment, error) {
	return svc.repo.Enroll(ctx, studentID, courseID)
}

func (svc *Service) QueryForStudent(ctx context.Context, studentID int) ([]StudentCourse, error) {
	return svc.repo.QueryForStudent(ctx, studentID)
}

func (svc *Service) Get(ctx context.Context, studentID, courseID int) (Enrollment, error) {
	return svc.repo.GetEnrollment(ctx, studentID, courseID)
}

// SetProgress updates one student's progress in one course.
func (svc *Service) SetProgress(ctx context.Context, studentID, courseID, progress int) error {
	if err := checkProgress(progress); err != nil {
		return err
	}
	return svc.repo.SetProgress(ctx, studentID, courseID, progress)
}

// SetProgressForCourse sets the same progress on every enrollment of the
// course. ErrNoEnrollments signals that nothing matched; no write happened.
func (svc *Service) SetProgressForCourse(ctx context.Context, courseID, progress int) (int, error) {
	if err := checkProgress(progress); err != nil {
		return 0, err
	}
	n, err := svc.repo.SetProgressForCourse(ctx, courseID, progress)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNoEnrollments
	}
	return n, nil
}

func (svc *Service) CountForCourse(ctx context.Context, courseID int) (int, error) {
	return svc.repo.CountForCourse(ctx, courseID)
}
