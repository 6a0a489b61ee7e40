package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/workq/workq-backend-go/internal/config"
	"github.com/workq/workq-backend-go/internal/domain/auth"
	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/domain/user"
	appHTTP "github.com/workq/workq-backend-go/internal/handler/http"
	"github.com/workq/workq-backend-go/internal/pkg/database"
	"github.com/workq/workq-backend-go/internal/pkg/jwt"
	"github.com/workq/workq-backend-go/internal/pkg/oauth"
	"github.com/workq/workq-backend-go/internal/pkg/sqlitedb"
	"github.com/workq/workq-backend-go/internal/repository/postgresql"
	"github.com/workq/workq-backend-go/internal/repository/sqlite"
	authService "github.com/workq/workq-backend-go/internal/service/auth"
	dashboardService "github.com/workq/workq-backend-go/internal/service/dashboard"
	timesheetService "github.com/workq/workq-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		userRepo         user.UserRepository
		refreshTokenRepo auth.RefreshTokenRepository
		timesheetRepo    timesheet.Repository
	)

	switch cfg.Storage.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		userRepo = postgresql.NewUserRepository(db)
		refreshTokenRepo = postgresql.NewRefreshTokenRepository(db)
		timesheetRepo = postgresql.NewTimesheetRepository(db)
	case "sqlite":
		db, err := sqlitedb.OpenDB(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal("Failed to open database: ", err)
		}
		userRepo = sqlite.NewUserRepository(db)
		refreshTokenRepo = sqlite.NewRefreshTokenRepository(db)
		timesheetRepo = sqlite.NewTimesheetRepository(db)
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, JWTService, timesheetRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, logger)
	dashboardSvc := dashboardService.NewDashboardService(timesheetSvc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	profileHandler := appHTTP.NewProfileHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		timesheetHandler,
		dashboardHandler,
		profileHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
