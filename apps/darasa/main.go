package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/auth"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/enrollment"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	"github.com/trezcool/darasa/storage/database/sqlite"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "DARASA : ", log.LstdFlags)

	conf, err := core.NewConfig()
	errAndDie(err)

	var logSvc core.Logger
	if conf.Rollbar.Token != "" {
		logSvc = logsvc.NewRollbarLogger(logger, conf)
	} else {
		logSvc = logsvc.NewConsoleLogger(logger)
	}

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(database.Migrate(db.DB))

	// set up services
	usrSvc := user.NewService(sqliterepos.NewUserRepository(db), logSvc)
	crsSvc := course.NewService(sqliterepos.NewCourseRepository(db))
	enrSvc := enrollment.NewService(sqliterepos.NewEnrollmentRepository(db))

	ctx := context.Background()
	_, created, err := usrSvc.EnsureAdmin(ctx, conf.DefaultAdmin.Username, conf.DefaultAdmin.Password)
	errAndDie(err)
	if created {
		fmt.Printf("Default admin user created. Username: %s | Password: %s\n",
			conf.DefaultAdmin.Username, conf.DefaultAdmin.Password)
	}

	app := newApplication(conf, logSvc, usrSvc, crsSvc, enrSvc, auth.NewSession())
	if err := app.run(ctx); err != nil {
		logSvc.Fatal(err.Error())
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
