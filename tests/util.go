package testutil

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/enrollment"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
)

// NewConfig returns a test config backed by a throwaway sqlite file.
func NewConfig(t *testing.T) *core.Config {
	t.Helper()
	conf := &core.Config{
		Env:     "TEST",
		AppName: "Darasa",
	}
	conf.Database.Path = filepath.Join(t.TempDir(), "test.db")
	conf.DefaultAdmin.Username = "admin"
	conf.DefaultAdmin.Password = "admin123"
	return conf
}

// PrepareDB opens a fresh migrated database for the test.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(NewConfig(t))
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db.DB); err != nil {
		t.Fatalf("PrepareDB() migration failed: %v", err)
	}
	return db
}

// NewLogger returns a console logger for tests.
func NewLogger() core.Logger {
	return logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
}

func CreateUser(t *testing.T, repo user.Repository, uname, pwd, role string) user.User {
	t.Helper()

	usr := user.User{
		Username: uname,
		Role:     role,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(t *testing.T, repo course.Repository, title string, instructorID int, price float64) course.Course {
	t.Helper()

	crs, err := repo.CreateCourse(context.Background(), course.Course{
		Title:        title,
		Description:  title + " description",
		InstructorID: instructorID,
		Price:        price,
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func Enroll(t *testing.T, repo enrollment.Repository, studentID, courseID int) enrollment.Enrollment {
	t.Helper()

	enr, err := repo.Enroll(context.Background(), studentID, courseID)
	if err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	return enr
}
