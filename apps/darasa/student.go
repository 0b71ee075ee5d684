package main

import (
	"context"
	"fmt"

	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

func (app *application) studentMenu(ctx context.Context, usr user.User) {
	fmt.Printf("\n[%s | Student]\n", usr.Username)
	fmt.Println("1) Browse courses\n2) Search courses\n3) Enroll in a course\n4) My courses\n5) Update my progress\n6) Profile\n7) Logout")

	switch app.prompt("> ") {
	case "1":
		app.listCourses(ctx, "")
	case "2":
		app.listCourses(ctx, app.prompt("Search title: "))
	case "3":
		app.enroll(ctx, usr)
	case "4":
		app.myEnrollments(ctx, usr)
	case "5":
		app.updateProgress(ctx, usr)
	case "6":
		app.profileMenu(ctx, usr)
	case "7":
		app.logout()
	}
}

func (app *application) listCourses(ctx context.Context, search string) {
	infos, err := app.crsSvc.QueryAll(ctx, course.QueryFilter{Search: search})
	if err != nil {
		app.printErr(err)
		return
	}
	if len(infos) == 0 {
		fmt.Println("No courses found.")
		return
	}
	fmt.Println("ID | Title | Instructor | Price ($)")
	for _, info := range infos {
		fmt.Printf("%d | %s | %s | %.2f\n", info.ID, info.Title, info.Instructor, info.Price)
	}
}

func (app *application) enroll(ctx context.Context, usr user.User) {
	if err := auth.CanEnroll(usr); err != nil {
		app.printErr(err)
		return
	}
	courseID, ok := app.promptInt("Course ID: ")
	if !ok {
		return
	}

	info, err := app.crsSvc.GetInfo(ctx, courseID)
	if err != nil {
		app.printErr(err)
		return
	}
	if _, err = app.enrSvc.Enroll(ctx, usr.ID, courseID); err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("Enrolled in %q.\n", info.Title)
}

func (app *application) myEnrollments(ctx context.Context, usr user.User) {
	if err := auth.CanViewEnrollments(usr, usr.ID); err != nil {
		app.printErr(err)
		return
	}
	courses, err := app.enrSvc.QueryForStudent(ctx, usr.ID)
	if err != nil {
		app.printErr(err)
		return
	}
	if len(courses) == 0 {
		fmt.Println("You are not enrolled in any course yet.")
		return
	}
	fmt.Println("ID | Title | Price ($) | Progress (%)")
	for _, crs := range courses {
		fmt.Printf("%d | %s | %.2f | %d\n", crs.CourseID, crs.Title, crs.Price, crs.Progress)
	}
}

func (app *application) updateProgress(ctx context.Context, usr user.User) {
	if err := auth.CanSetProgress(usr, usr.ID); err != nil {
		app.printErr(err)
		return
	}
	courseID, ok := app.promptInt("Course ID: ")
	if !ok {
		return
	}
	progress, ok := app.promptInt("Progress (0-100): ")
	if !ok {
		return
	}

	if err := app.enrSvc.SetProgress(ctx, usr.ID, courseID, progress); err != nil {
		app.printErr(err)
		return
	}
	fmt.Printf("Progress updated to %d%%.\n", progress)
}
