package app

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"devlink_backend/database"
	"devlink_backend/internal/auth"
	"devlink_backend/internal/config"
	"devlink_backend/internal/email"
	"devlink_backend/internal/handlers"
	"devlink_backend/internal/logger"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/routes"
	"devlink_backend/internal/services"
)

// Run boots the full application: config, logger, database, DI wiring
// and the HTTP server. It blocks until the server exits.
func Run() error {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready", "driver", cfg.Database.Driver)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	conversationRepo := repositories.NewConversationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	svc := &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, profileRepo, tokens),
		ProfileService: services.NewProfileService(profileRepo),
		ProjectService: services.NewProjectService(projectRepo),
		ApplicationService: services.NewApplicationService(
			applicationRepo,
			conversationRepo,
			messageRepo,
			projectRepo,
			userRepo,
			profileRepo,
			newEmailSender(cfg),
		),
		ConversationService: services.NewConversationService(conversationRepo, messageRepo),
	}

	h := handlers.NewAppHandlers(svc, tokens, profileRepo)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(r, h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("server starting", "addr", addr)
	return r.Run(addr)
}

// openDatabase connects via the configured driver. TranslateError is
// required: the services rely on gorm.ErrDuplicatedKey to resolve races
// on the unique application and conversation indexes.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func newEmailSender(cfg *config.Config) email.Sender {
	if !cfg.Email.Enabled {
		return email.NoopSender{}
	}

	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost: cfg.Email.SMTPHost,
		SMTPPort: cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("email disabled", "error", err)
		return email.NoopSender{}
	}
	return sender
}
