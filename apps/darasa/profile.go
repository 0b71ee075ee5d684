package main

import (
	"context"
	"fmt"

	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/user"
)

func (app *application) profileMenu(ctx context.Context, usr user.User) {
	fmt.Printf("\nUsername: %s\nRole:     %s\n", usr.Username, usr.Role)
	fmt.Println("1) Change password\n2) Back")

	if app.prompt("> ") != "1" {
		return
	}
	app.changePassword(ctx, usr)
}

func (app *application) changePassword(ctx context.Context, usr user.User) {
	if err := auth.CanChangePassword(usr, usr.ID); err != nil {
		app.printErr(err)
		return
	}

	cp := user.ChangePassword{
		OldPassword: app.promptPassword("Current password: "),
	}
	cp.Password = app.promptPassword("New password: ")
	cp.PasswordConfirm = app.promptPassword("Confirm new password: ")

	updated, err := app.usrSvc.ChangePassword(ctx, usr.ID, cp)
	if err != nil {
		app.printErr(err)
		return
	}
	app.session.Refresh(updated)
	fmt.Println("Password has been updated successfully.")
}
