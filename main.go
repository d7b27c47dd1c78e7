package main

import (
	"fmt"
	"os"
	"time"

	"apitemplate/src/controller"
	"apitemplate/src/database"
	"apitemplate/src/repository"
	"apitemplate/src/routes"
	"apitemplate/src/server"
	"apitemplate/src/utils"

	logger "github.com/sirupsen/logrus"
)

func main() {
	utils.SetupLogger()
	defer handlePanic()

	if err := database.InitMainDB(); err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	errorConfig := controller.GetConfig()
	deps := routes.Dependencies{AppName: errorConfig.AppName, Environment: errorConfig.Env()}

	var recorder controller.ExceptionRecorder
	if database.MainDB != nil {
		deps.Exceptions = repository.NewExceptionRepository(database.MainDB)
		recorder = deps.Exceptions
	}

	serverConfig := server.GetConfig()
	router := server.NewRouter(serverConfig, controller.NewErrorController(errorConfig, recorder), routes.Mount(deps))

	if err := server.StartServer(serverConfig, router); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		logger.WithError(fmt.Errorf("%+v", r)).Error(fmt.Sprintf("Application %s panic", os.Getenv("APP_NAME")))
		//nolint
		time.Sleep(time.Second * 5)
	}
}
