package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/dto"
	"github.com/naturalsuds/soapshop/internal/middleware"
	"github.com/naturalsuds/soapshop/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{"Error": "Invalid username or password"})
		return
	}

	actor, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		// One generic message for unknown user and wrong password alike.
		render(c, http.StatusOK, "login.html", gin.H{"Error": "Invalid username or password"})
		return
	}

	sess := middleware.GetSession(c)
	sess.Username = actor.Username
	sess.Role = actor.Role

	next := sess.NextURL
	sess.NextURL = ""
	if next == "" || actor.IsAdmin() {
		next = "/"
	}
	c.Redirect(http.StatusSeeOther, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.GetSession(c).ClearActor()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusOK, "signup.html", gin.H{"Error": "Please fill in all fields."})
		return
	}

	if err := h.svc.Register(req.Username, req.Email, req.Password, req.ConfirmPassword); err != nil {
		render(c, http.StatusOK, "signup.html", gin.H{"Error": signupErrorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func signupErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match!"
	case errors.Is(err, service.ErrUsernameReserved):
		return "That username is reserved!"
	case errors.Is(err, service.ErrUsernameTaken):
		return "Username already exists!"
	case errors.Is(err, service.ErrEmailTaken):
		return "Email already registered!"
	default:
		return "Sign up failed, please try again."
	}
}
