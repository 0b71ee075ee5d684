package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

var (
	student    = user.User{ID: 1, Username: "jon", Role: user.RoleStudent}
	instructor = user.User{ID: 2, Username: "tywin", Role: user.RoleInstructor}
	admin      = user.User{ID: 3, Username: "varys", Role: user.RoleAdmin}

	ownCourse   = course.Course{ID: 10, Title: "Intro to Go", InstructorID: instructor.ID}
	otherCourse = course.Course{ID: 11, Title: "SQL Basics", InstructorID: 666}
)

func TestCanEnroll(t *testing.T) {
	tests := []struct {
		name    string
		actor   user.User
		wantErr error
	}{
		{name: "student", actor: student},
		{name: "instructor", actor: instructor, wantErr: auth.ErrPermissionDenied},
		{name: "admin", actor: admin, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanEnroll(tt.actor))
		})
	}
}

func TestCanViewEnrollments(t *testing.T) {
	tests := []struct {
		name      string
		actor     user.User
		studentID int
		wantErr   error
	}{
		{name: "own enrollments", actor: student, studentID: student.ID},
		{name: "someone else's", actor: student, studentID: 666, wantErr: auth.ErrPermissionDenied},
		{name: "instructor", actor: instructor, studentID: instructor.ID, wantErr: auth.ErrPermissionDenied},
		{name: "admin", actor: admin, studentID: admin.ID, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanViewEnrollments(tt.actor, tt.studentID))
		})
	}
}

func TestCanSetProgress(t *testing.T) {
	tests := []struct {
		name      string
		actor     user.User
		studentID int
		wantErr   error
	}{
		{name: "own progress", actor: student, studentID: student.ID},
		{name: "someone else's", actor: student, studentID: 666, wantErr: auth.ErrPermissionDenied},
		{name: "instructor", actor: instructor, studentID: instructor.ID, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanSetProgress(tt.actor, tt.studentID))
		})
	}
}

func TestCanCreateCourse(t *testing.T) {
	tests := []struct {
		name         string
		actor        user.User
		instructorID int
		wantErr      error
	}{
		{name: "own course", actor: instructor, instructorID: instructor.ID},
		{name: "for someone else", actor: instructor, instructorID: 666, wantErr: auth.ErrPermissionDenied},
		{name: "student", actor: student, instructorID: student.ID, wantErr: auth.ErrPermissionDenied},
		{name: "admin", actor: admin, instructorID: admin.ID, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanCreateCourse(tt.actor, tt.instructorID))
		})
	}
}

func TestCanDeleteCourse(t *testing.T) {
	tests := []struct {
		name    string
		actor   user.User
		crs     course.Course
		wantErr error
	}{
		{name: "owning instructor", actor: instructor, crs: ownCourse},
		{name: "other instructor's course", actor: instructor, crs: otherCourse, wantErr: auth.ErrPermissionDenied},
		{name: "admin deletes any course", actor: admin, crs: otherCourse},
		{name: "student", actor: student, crs: ownCourse, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanDeleteCourse(tt.actor, tt.crs))
		})
	}
}

func TestCanBulkSetProgress(t *testing.T) {
	tests := []struct {
		name    string
		actor   user.User
		crs     course.Course
		wantErr error
	}{
		{name: "owning instructor", actor: instructor, crs: ownCourse},
		{name: "other instructor's course", actor: instructor, crs: otherCourse, wantErr: auth.ErrPermissionDenied},
		{name: "admin", actor: admin, crs: ownCourse, wantErr: auth.ErrPermissionDenied},
		{name: "student", actor: student, crs: ownCourse, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanBulkSetProgress(tt.actor, tt.crs))
		})
	}
}

func TestCanManageUsers(t *testing.T) {
	assert.NoError(t, auth.CanManageUsers(admin))
	assert.Equal(t, auth.ErrPermissionDenied, auth.CanManageUsers(student))
	assert.Equal(t, auth.ErrPermissionDenied, auth.CanManageUsers(instructor))
}

func TestCanDeleteUser(t *testing.T) {
	tests := []struct {
		name     string
		actor    user.User
		targetID int
		wantErr  error
	}{
		{name: "admin deletes another user", actor: admin, targetID: student.ID},
		{name: "admin deletes own account", actor: admin, targetID: admin.ID, wantErr: auth.ErrOwnAccount},
		{name: "student", actor: student, targetID: instructor.ID, wantErr: auth.ErrPermissionDenied},
		{name: "instructor", actor: instructor, targetID: student.ID, wantErr: auth.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, auth.CanDeleteUser(tt.actor, tt.targetID))
		})
	}
}

func TestCanChangePassword(t *testing.T) {
	assert.NoError(t, auth.CanChangePassword(student, student.ID))
	assert.NoError(t, auth.CanChangePassword(admin, admin.ID))
	assert.Equal(t, auth.ErrPermissionDenied, auth.CanChangePassword(student, instructor.ID))
}
