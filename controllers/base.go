package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"Chirp/auth"
	docs "Chirp/docs"
	"Chirp/middlewares"
	"Chirp/models"
	"Chirp/seed"
	"Chirp/utils/httpctx"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
	Auth   *auth.Authenticator
}

// Initialize connects to Postgres, migrates the schema, and wires the
// router. The JWT signing secret comes from API_SECRET and is required:
// refusing to start beats signing tokens with an empty key.
func (server *Server) Initialize(DbUser, DbPassword, DbPort, DbHost, DbName string) {
	var dsn string

	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		dsn = os.Getenv("DATABASE_URL")
		if dsn != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			DbHost, DbUser, DbPassword, DbName, DbPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot connect to Postgres: %v", err)
	}
	server.DB = db

	if err := server.DB.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Tweet{},
		&models.Like{},
		&models.Reply{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	secret := os.Getenv("API_SECRET")
	if secret == "" {
		log.Fatal("API_SECRET must be set")
	}
	server.Auth = auth.NewAuthenticator(secret)

	if os.Getenv("SEED_DB") == "true" {
		seed.Load(server.DB)
	}

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware())
	server.initializeRoutes()

	if os.Getenv("APP_ENV") != "production" {
		if host := strings.TrimSpace(os.Getenv("SWAGGER_HOST")); host != "" {
			docs.SwaggerInfo.Host = host
		}
		server.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

// currentUserID resolves the authenticated username set by the token
// middleware to its store-assigned user ID. A false ok means the
// request carries no usable identity; a non-nil error is a store
// failure and must surface as a 500, not an auth error.
func (server *Server) currentUserID(c *gin.Context) (uint, bool, error) {
	username, ok := httpctx.CurrentUsername(c)
	if !ok {
		return 0, false, nil
	}
	user, err := (&models.User{}).FindUserByUsername(server.DB, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return user.ID, true, nil
}
