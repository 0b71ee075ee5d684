package main

import (
	"context"
	"fmt"

	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/user"
)

func (app *application) adminMenu(ctx context.Context, usr user.User) {
	fmt.Printf("\n[%s | Admin]\n", usr.Username)
	fmt.Println("1) List users\n2) Search users\n3) Delete a user\n4) Promote a student to instructor\n5) List courses\n6) Delete a course\n7) Profile\n8) Logout")

	switch app.prompt("> ") {
	case "1":
		app.listUsers(ctx, usr, "")
	case "2":
		app.listUsers(ctx, usr, app.prompt("Search username: "))
	case "3":
		app.deleteUser(ctx, usr)
	case "4":
		app.promoteUser(ctx, usr)
	case "5":
		app.listCourses(ctx, "")
	case "6":
		app.deleteAnyCourse(ctx, usr)
	case "7":
		app.profileMenu(ctx, usr)
	case "8":
		app.logout()
	}
}

func (app *application) listUsers(ctx context.Context, actor user.User, search string) {
	if err := auth.CanManageUsers(actor); err != nil {
		app.printErr(err)
		return
	}
	users, err := app.usrSvc.Filter(ctx, user.QueryFilter{Search: search})
	if err != nil {
		app.printErr(err)
		return
	}
	fmt.Println("ID | Username | Role")
	for _, usr := range users {
		fmt.Printf("%d | %s | %s\n", usr.ID, usr.Username, usr.Role)
	}
}

func (app *application) deleteUser(ctx context.Context, actor user.User) {
	userID, ok := app.promptInt("User ID: ")
	if !ok {
		return
	}
	if err := auth.CanDeleteUser(actor, userID); err != nil {
		app.printErr(err)
		return
	}
	target, err := app.usrSvc.GetByID(ctx, userID)
	if err != nil {
		app.printErr(err)
		return
	}
	if !app.confirm(fmt.Sprintf("Delete user %q, their courses and enrollments?", target.Username)) {
		return
	}
	if err = app.usrSvc.Delete(ctx, target.ID); err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("User %q deleted.\n", target.Username)
}

func (app *application) promoteUser(ctx context.Context, actor user.User) {
	if err := auth.CanManageUsers(actor); err != nil {
		app.printErr(err)
		return
	}
	userID, ok := app.promptInt("User ID: ")
	if !ok {
		return
	}
	usr, err := app.usrSvc.Promote(ctx, userID)
	if err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("User %q promoted to %s.\n", usr.Username, usr.Role)
}

// deleteAnyCourse lets an admin delete any course regardless of ownership.
func (app *application) deleteAnyCourse(ctx context.Context, actor user.User) {
	courseID, ok := app.promptInt("Course ID: ")
	if !ok {
		return
	}
	crs, err := app.crsSvc.GetByID(ctx, courseID)
	if err != nil {
		app.printErr(err)
		return
	}
	if err = auth.CanDeleteCourse(actor, crs); err != nil {
		app.printErr(err)
		return
	}
	if !app.confirm(fmt.Sprintf("Delete %q and all its enrollments?", crs.Title)) {
		return
	}
	if err = app.crsSvc.Delete(ctx, crs.ID); err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("Course %q deleted.\n", crs.Title)
}
