package enrollment

import "time"

// Progress bounds. Progress is a completion percentage.
const (
	MinProgress = 0
	MaxProgress = 100
)

type Enrollment struct {
	ID        int       `db:"id" json:"id"`
	StudentID int       `db:"student_id" json:"student_id"`
	CourseID  int       `db:"course_id" json:"course_id"`
	Progress  int       `db:"progress" json:"progress"`
	CreatedAt time.Time `db:"created_at" json:"created_at"` // UTC
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"` // UTC
}

// StudentCourse is an Enrollment joined with its course's metadata,
// as listed on a student's dashboard.
type StudentCourse struct {
	CourseID    int     `db:"course_id" json:"course_id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Progress    int     `db:"progress" json:"progress"`
}
