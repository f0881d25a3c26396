package service

import (
	"github.com/avelkin/courses-api/internal/config"
	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/store"
	"github.com/avelkin/courses-api/internal/validators"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	CourseService CourseService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRecordValidator()

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, logger),
		UserService:   NewUserService(storages.UserRepository, validator, cfg.App, logger),
		CourseService: NewCourseService(storages.CourseRepository, validator, logger),
	}
}
