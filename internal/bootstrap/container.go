package bootstrap

import (
	"github.com/tomymaritano/viny-sub011/internal/config"
	"github.com/tomymaritano/viny-sub011/internal/controller"
	"github.com/tomymaritano/viny-sub011/internal/pkg/logger"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"
	"github.com/tomymaritano/viny-sub011/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController      controller.IAuthController
	NoteController      controller.INoteController
	NotebookController  controller.INotebookController
	TagController       controller.ITagController
	MigrationController controller.IMigrationController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)
	rateLimiter := serverutils.NewRateLimiter(cfg.Auth.RateLimitMax, cfg.Auth.RateLimitWindow)

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	noteService := service.NewNoteService(uowFactory)
	notebookService := service.NewNotebookService(uowFactory)
	tagService := service.NewTagService(uowFactory)
	migrationService := service.NewMigrationService(
		uowFactory,
		noteService,
		notebookService,
		tagService,
		!cfg.IsProduction(),
	)

	return &Container{
		Logger: sysLogger,
		AuthController: controller.NewAuthController(
			authService,
			jwtMiddleware,
			rateLimiter.Middleware(),
			cfg.Auth.RefreshTokenTTL,
			cfg.IsProduction(),
		),
		NoteController:      controller.NewNoteController(noteService, jwtMiddleware),
		NotebookController:  controller.NewNotebookController(notebookService, jwtMiddleware),
		TagController:       controller.NewTagController(tagService, jwtMiddleware),
		MigrationController: controller.NewMigrationController(migrationService, jwtMiddleware),
	}
}
