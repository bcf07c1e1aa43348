package main

import (
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// @title Course Planner API
// @version 1.0
// @description Plans course offerings of university programs across campuses and fiscal years
// @BasePath /api/course-planner/v1
// @schemes http https

// @securityDefinitions.apikey TokenAuth
// @in header
// @name authtoken
// @description Identity provider ID token

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
