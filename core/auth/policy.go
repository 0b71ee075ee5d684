package auth

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrOwnAccount       = errors.New("cannot delete the account currently logged in")
)

// Role/ownership policy. Every privileged store call is gated by exactly one
// of these checks; a deny is surfaced to the caller, never downgraded.

// CanEnroll allows students to enroll themselves in courses.
func CanEnroll(actor user.User) error {
	if !actor.IsStudent() {
		return ErrPermissionDenied
	}
	return nil
}

// CanViewEnrollments allows a student to view their own enrollments.
func CanViewEnrollments(actor user.User, studentID int) error {
	if !actor.IsStudent() || actor.ID != studentID {
		return ErrPermissionDenied
	}
	return nil
}

// CanSetProgress allows a student to update their own progress in a course.
func CanSetProgress(actor user.User, studentID int) error {
	if !actor.IsStudent() || actor.ID != studentID {
		return ErrPermissionDenied
	}
	return nil
}

// CanCreateCourse allows an instructor to create a course for themself.
func CanCreateCourse(actor user.User, instructorID int) error {
	if !actor.IsInstructor() || actor.ID != instructorID {
		return ErrPermissionDenied
	}
	return nil
}

// CanDeleteCourse allows the owning instructor, or any admin, to delete a course.
func CanDeleteCourse(actor user.User, crs course.Course) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsInstructor() && actor.ID == crs.InstructorID {
		return nil
	}
	return ErrPermissionDenied
}

// CanBulkSetProgress allows the owning instructor to set the progress of
// every enrollment in their course at once.
func CanBulkSetProgress(actor user.User, crs course.Course) error {
	if actor.IsInstructor() && actor.ID == crs.InstructorID {
		return nil
	}
	return ErrPermissionDenied
}

// CanManageUsers gates user listing and promotion.
func CanManageUsers(actor user.User) error {
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	return nil
}

// CanDeleteUser forbids non-admins, and admins deleting their own account.
func CanDeleteUser(actor user.User, targetID int) error {
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	if actor.ID == targetID {
		return ErrOwnAccount
	}
	return nil
}

// CanChangePassword allows any authenticated user to change their own password.
func CanChangePassword(actor user.User, targetID int) error {
	if actor.ID != targetID {
		return ErrPermissionDenied
	}
	return nil
}
