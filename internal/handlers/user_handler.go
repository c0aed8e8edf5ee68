package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BookShelfServices01/books-management-api/internal/config"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/httpresp"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	ucUser "github.com/BookShelfServices01/books-management-api/internal/usecase/user"
)

const tokenTTL = 100 * time.Hour

type UserHandler struct {
	registerUC *ucUser.Register
	loginUC    *ucUser.Login
	config     *config.Config
}

func NewUserHandler(
	registerUC *ucUser.Register,
	loginUC *ucUser.Login,
	cfg *config.Config,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		config:     cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *UserHandler) Register(c *gin.Context) {
	if !requireBody(c, "invalid request parameters, please provide user details") {
		return
	}

	var req RegisterRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucUser.RegisterInput{
		Title:    req.Title,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, "success", user)
}

func (h *UserHandler) Login(c *gin.Context) {
	if !requireBody(c, "invalid request parameters, please provide login details") {
		return
	}

	var req LoginRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := h.loginUC.Execute(c.Request.Context(), ucUser.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.Header("x-api-key", token)
	httpresp.OK(c, "user logged in successfully", gin.H{"token": token})
}

// --------- JWT ---------

func (h *UserHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
