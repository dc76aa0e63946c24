package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Chirp/auth"
	"Chirp/models"
	"Chirp/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Tweet{},
		&models.Like{},
		&models.Reply{},
	); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	server := &Server{
		DB:     db,
		Router: gin.New(),
		Auth:   auth.NewAuthenticator("test-secret"),
	}
	server.initializeRoutes()
	return server
}

func doRequest(t *testing.T, server *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)
	return w
}

// createUser inserts a user directly, bypassing the register endpoint.
func createUser(t *testing.T, server *Server, username, password, name string) *models.User {
	t.Helper()
	hashed, err := security.Hash(password)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Password: string(hashed),
		Name:     name,
		Gender:   "other",
	}
	_, err = user.SaveUser(server.DB)
	require.NoError(t, err)
	return &user
}

func createFollow(t *testing.T, server *Server, followerID, followedID uint) {
	t.Helper()
	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	_, err := follow.SaveFollow(server.DB)
	require.NoError(t, err)
}

func createTweet(t *testing.T, server *Server, authorID uint, body string, at time.Time) *models.Tweet {
	t.Helper()
	tweet := models.Tweet{UserID: authorID, Body: body, CreatedAt: at.UTC().Truncate(time.Second)}
	_, err := tweet.SaveTweet(server.DB)
	require.NoError(t, err)
	return &tweet
}

func loginUser(t *testing.T, server *Server, username, password string) string {
	t.Helper()
	w := doRequest(t, server, http.MethodPost, "/login/", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}
