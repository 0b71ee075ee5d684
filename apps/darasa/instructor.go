package main

import (
	"context"
	"fmt"

	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

func (app *application) instructorMenu(ctx context.Context, usr user.User) {
	fmt.Printf("\n[%s | Instructor]\n", usr.Username)
	fmt.Println("1) My courses\n2) Create a course\n3) Delete a course\n4) Set progress for all enrolled students\n5) Profile\n6) Logout")

	switch app.prompt("> ") {
	case "1":
		app.myCourses(ctx, usr)
	case "2":
		app.createCourse(ctx, usr)
	case "3":
		app.deleteCourse(ctx, usr)
	case "4":
		app.bulkSetProgress(ctx, usr)
	case "5":
		app.profileMenu(ctx, usr)
	case "6":
		app.logout()
	}
}

func (app *application) myCourses(ctx context.Context, usr user.User) {
	courses, err := app.crsSvc.QueryByInstructor(ctx, usr.ID)
	if err != nil {
		app.printErr(err)
		return
	}
	if len(courses) == 0 {
		fmt.Println("You have no courses yet.")
		return
	}
	fmt.Println("ID | Title | Price ($)")
	for _, crs := range courses {
		fmt.Printf("%d | %s | %.2f\n", crs.ID, crs.Title, crs.Price)
	}
}

func (app *application) createCourse(ctx context.Context, usr user.User) {
	if err := auth.CanCreateCourse(usr, usr.ID); err != nil {
		app.printErr(err)
		return
	}

	nc := course.NewCourse{
		Title:        app.prompt("Title: "),
		Description:  app.prompt("Description: "),
		InstructorID: usr.ID,
	}
	price, ok := app.promptFloat("Price ($): ")
	if !ok {
		return
	}
	nc.Price = price

	crs, err := app.crsSvc.Create(ctx, nc)
	if err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("Course %q created.\n", crs.Title)
}

// deleteCourse removes one of the instructor's own courses.
func (app *application) deleteCourse(ctx context.Context, usr user.User) {
	courseID, ok := app.promptInt("Course ID: ")
	if !ok {
		return
	}
	crs, err := app.crsSvc.GetByID(ctx, courseID)
	if err != nil {
		app.printErr(err)
		return
	}
	if err = auth.CanDeleteCourse(usr, crs); err != nil {
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

func (app *application) bulkSetProgress(ctx context.Context, usr user.User) {
	courseID, ok := app.promptInt("Course ID: ")
	if !ok {
		return
	}
	crs, err := app.crsSvc.GetByID(ctx, courseID)
	if err != nil {
		app.printErr(err)
		return
	}
	if err = auth.CanBulkSetProgress(usr, crs); err != nil {
		app.printErr(err)
		return
	}

	enrolled, err := app.enrSvc.CountForCourse(ctx, crs.ID)
	if err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("%d student(s) enrolled in %q.\n", enrolled, crs.Title)

	progress, ok := app.promptInt("Progress (0-100): ")
	if !ok {
		return
	}
	n, err := app.enrSvc.SetProgressForCourse(ctx, crs.ID, progress)
	if err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("Progress updated to %d%% for %d enrolled student(s).\n", progress, n)
}
