package sqliterepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/enrollment"
)

type enrollmentRepository struct {
	db *sqlx.DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *sqlx.DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo enrollmentRepository) Enroll(ctx context.Context, studentID, courseID int) (enrollment.Enrollment, error) {
	now := time.Now().UTC()
	enr := enrollment.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Progress:  enrollment.MinProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := repo.db.ExecContext(ctx,
		`INSERT INTO enrollments (student_id, course_id, progress, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		enr.StudentID, enr.CourseID, enr.Progress, enr.CreatedAt, enr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return enrollment.Enrollment{}, enrollment.ErrAlreadyEnrolled
		}
		return enrollment.Enrollment{}, errors.Wrap(err, "enrolling student")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return enrollment.Enrollment{}, errors.Wrap(err, "getting inserted enrollment ID")
	}
	enr.ID = int(id)
	return enr, nil
}

func (repo enrollmentRepository) QueryForStudent(ctx context.Context, studentID int) ([]enrollment.StudentCourse, error) {
	courses := make([]enrollment.StudentCourse, 0)
	err := repo.db.SelectContext(ctx, &courses, `
SELECT c.id AS course_id, c.title, c.description, c.price, e.progress
FROM enrollments e
JOIN courses c ON e.course_id = c.id
WHERE e.student_id = ?
ORDER BY e.id`, studentID)
	return courses, errors.Wrap(err, "querying student enrollments")
}

func (repo enrollmentRepository) GetEnrollment(ctx context.Context, studentID, courseID int) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	err := repo.db.GetContext(ctx, &enr, `SELECT * FROM enrollments WHERE student_id = ? AND course_id = ?`, studentID, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return enrollment.Enrollment{}, enrollment.ErrNotFound
		}
		return enrollment.Enrollment{}, errors.Wrap(err, "getting enrollment")
	}
	return enr, nil
}

func (repo enrollmentRepository) SetProgress(ctx context.Context, studentID, courseID, progress int) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE enrollments SET progress = ?, updated_at = ? WHERE student_id = ? AND course_id = ?`,
		progress, time.Now().UTC(), studentID, courseID,
	)
	if err != nil {
		return errors.Wrap(err, "updating progress")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return enrollment.ErrNotFound
	}
	return nil
}

func (repo enrollmentRepository) SetProgressForCourse(ctx context.Context, courseID, progress int) (int, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE enrollments SET progress = ?, updated_at = ? WHERE course_id = ?`,
		progress, time.Now().UTC(), courseID,
	)
	if err != nil {
		return 0, errors.Wrap(err, "updating course progress")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "counting updated enrollments")
	}
	return int(n), nil
}

func (repo enrollmentRepository) CountForCourse(ctx context.Context, courseID int) (int, error) {
	var n int
	err := repo.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM enrollments WHERE course_id = ?`, courseID)
	return n, errors.Wrap(err, "counting enrollments")
}
