package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"Chirp/models"
	"Chirp/responses"
	"Chirp/security"
	"Chirp/utils/formaterror"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register godoc
// @Summary      Register
// @Description  Create a new user account
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        user  body  RegisterRequest  true  "Registration payload"
// @Success      200  {string}  string  "User created successfully"
// @Failure      400  {string}  string  "User already exists / Password is too short"
// @Router       /register/ [post]
func (server *Server) Register(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid Request")
		return
	}
	// The model's password field is excluded from JSON, so the body is
	// read into a request struct and copied over.
	var req RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.String(http.StatusBadRequest, "Invalid Request")
		return
	}
	user := models.User{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Gender:   req.Gender,
	}
	user.Prepare()

	// The existence check runs first so a taken username wins over a
	// weak password; the unique index on username closes the race two
	// concurrent registrations would otherwise hit.
	_, err = user.FindUserByUsername(server.DB, user.Username)
	if err == nil {
		c.String(http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if errorMessages := user.Validate("register"); len(errorMessages) > 0 {
		c.String(http.StatusBadRequest, errorMessages["Invalid_password"])
		return
	}

	hashedPassword, err := security.Hash(user.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	user.Password = string(hashedPassword)

	if _, err := user.SaveUser(server.DB); err != nil {
		if formaterror.IsUniqueViolation(err) {
			c.String(http.StatusBadRequest, "User already exists")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.String(http.StatusOK, "User created successfully")
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login payload"
// @Success      200  {object}  responses.LoginResponse
// @Failure      400  {string}  string  "Invalid user / Invalid password"
// @Router       /login/ [post]
func (server *Server) Login(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid Request")
		return
	}
	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.String(http.StatusBadRequest, "Invalid Request")
		return
	}
	login := models.User{Username: req.Username, Password: req.Password}
	login.Prepare()

	user, err := login.FindUserByUsername(server.DB, login.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusBadRequest, "Invalid user")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := security.VerifyPassword(user.Password, login.Password); err != nil {
		c.String(http.StatusBadRequest, "Invalid password")
		return
	}

	token, err := server.Auth.CreateToken(user.Username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.LoginResponse{Token: token})
}
