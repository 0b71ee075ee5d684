package sqliterepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

const courseInfoQuery = `
SELECT c.id, c.title, c.description, u.username AS instructor, c.price
FROM courses c
JOIN users u ON c.instructor_id = u.id`

func (repo courseRepository) CheckTitleUniqueness(ctx context.Context, title string) error {
	var exists bool
	if err := repo.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM courses WHERE title = ?)`, title); err != nil {
		return errors.Wrap(err, "checking title uniqueness")
	}
	if exists {
		return course.ErrTitleExists
	}
	return nil
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	res, err := repo.db.ExecContext(ctx,
		`INSERT INTO courses (title, description, instructor_id, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		crs.Title, crs.Description, crs.InstructorID, crs.Price, crs.CreatedAt, crs.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return course.Course{}, course.ErrTitleExists
		}
		return course.Course{}, errors.Wrap(err, "creating course")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return course.Course{}, errors.Wrap(err, "getting inserted course ID")
	}
	crs.ID = int(id)
	return crs, nil
}

func (repo courseRepository) QueryAllCourses(ctx context.Context, filter course.QueryFilter) ([]course.Info, error) {
	query := courseInfoQuery
	args := make([]interface{}, 0, 1)

	if filter.Search != "" {
		query += `
WHERE instr(lower(c.title), lower(?)) > 0`
		args = append(args, filter.Search)
	}
	query += `
ORDER BY c.id`

	infos := make([]course.Info, 0)
	err := repo.db.SelectContext(ctx, &infos, query, args...)
	return infos, errors.Wrap(err, "querying courses")
}

func (repo courseRepository) QueryCoursesByInstructor(ctx context.Context, instructorID int) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	err := repo.db.SelectContext(ctx, &courses, `SELECT * FROM courses WHERE instructor_id = ? ORDER BY id`, instructorID)
	return courses, errors.Wrap(err, "querying instructor courses")
}

func (repo courseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	var crs course.Course
	if err := repo.db.GetContext(ctx, &crs, `SELECT * FROM courses WHERE id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "getting course")
	}
	return crs, nil
}

func (repo courseRepository) GetCourseInfo(ctx context.Context, id int) (course.Info, error) {
	var info course.Info
	if err := repo.db.GetContext(ctx, &info, courseInfoQuery+`
WHERE c.id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return course.Info{}, course.ErrNotFound
		}
		return course.Info{}, errors.Wrap(err, "getting course info")
	}
	return info, nil
}

func (repo courseRepository) DeleteCoursesByID(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM courses WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "expanding query")
	}
	_, err = repo.db.ExecContext(ctx, query, args...)
	return errors.Wrap(err, "deleting courses")
}
