package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/enrollment"
	"github.com/trezcool/darasa/core/user"
)

var readPasswordFunc = term.ReadPassword // mockable

// application drives the interactive terminal session. Each action reads the
// session, runs the policy check and calls a service; nothing talks to the
// database directly.
type application struct {
	conf    *core.Config
	log     core.Logger
	usrSvc  *user.Service
	crsSvc  *course.Service
	enrSvc  *enrollment.Service
	session *auth.Session

	in *bufio.Reader
}

func newApplication(
	conf *core.Config,
	log core.Logger,
	usrSvc *user.Service,
	crsSvc *course.Service,
	enrSvc *enrollment.Service,
	session *auth.Session,
) *application {
	return &application{
		conf:    conf,
		log:     log,
		usrSvc:  usrSvc,
		crsSvc:  crsSvc,
		enrSvc:  enrSvc,
		session: session,
		in:      bufio.NewReader(os.Stdin),
	}
}

func (app *application) run(ctx context.Context) error {
	fmt.Printf("=== %s ===\n", app.conf.AppName)

	for {
		usr, err := app.session.Current()
		if err != nil {
			if quit := app.anonMenu(ctx); quit {
				return nil
			}
			continue
		}

		switch usr.Role {
		case user.RoleStudent:
			app.studentMenu(ctx, usr)
		case user.RoleInstructor:
			app.instructorMenu(ctx, usr)
		case user.RoleAdmin:
			app.adminMenu(ctx, usr)
		default:
			return fmt.Errorf("unknown role %q", usr.Role)
		}
	}
}

func (app *application) anonMenu(ctx context.Context) (quit bool) {
	fmt.Println("\n1) Login\n2) Register\nq) Quit")
	switch app.prompt("> ") {
	case "1":
		app.login(ctx)
	case "2":
		app.register(ctx)
	case "q":
		return true
	}
	return false
}

func (app *application) login(ctx context.Context) {
	uname := app.prompt("Username: ")
	pwd := app.promptPassword("Password: ")

	usr, err := app.usrSvc.Authenticate(ctx, uname, pwd)
	if err != nil {
		app.printErr(err)
		return
	}
	app.session.Login(usr)
	fmt.Printf("Welcome, %s!\n", usr.Username)
}

func (app *application) register(ctx context.Context) {
	nu := user.NewUser{
		Username: app.prompt("Username: "),
		Role:     user.RoleStudent,
	}
	nu.Password = app.promptPassword("Password: ")
	nu.PasswordConfirm = app.promptPassword("Confirm password: ")
	if app.prompt("Role [1=Student, 2=Instructor]: ") == "2" {
		nu.Role = user.RoleInstructor
	}

	if _, err := app.usrSvc.Register(ctx, nu); err != nil {
		app.printErr(err)
		return
	}
	fmt.Println("You have registered successfully. Please log in.")
}

func (app *application) logout() {
	app.session.Logout()
	fmt.Println("Logged out.")
}

// prompt helpers

func (app *application) prompt(label string) string {
	fmt.Print(label)
	line, _ := app.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (app *application) promptPassword(label string) string {
	fmt.Print(label)
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(pwd)
}

func (app *application) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(app.prompt(label))
	if err != nil {
		fmt.Println("Please enter a number.")
		return 0, false
	}
	return n, true
}

func (app *application) promptFloat(label string) (float64, bool) {
	f, err := strconv.ParseFloat(app.prompt(label), 64)
	if err != nil {
		fmt.Println("Please enter a valid amount.")
		return 0, false
	}
	return f, true
}

func (app *application) confirm(label string) bool {
	return strings.EqualFold(app.prompt(label+" [y/N]: "), "y")
}

func (app *application) printErr(err error) {
	if fldErrs := core.FieldErrors(err); fldErrs != nil {
		for fld, msg := range fldErrs {
			fmt.Printf("error: %s: %s\n", fld, msg)
		}
		return
	}
	fmt.Printf("error: %s\n", err)
}
