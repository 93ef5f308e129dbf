// Package handler contains the HTTP handlers for the JSON API.
package handler

import (
	"net/http"

	"marquee/internal/delivery/api/response"
	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/errors"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = domainerrors.NewValidationError("Invalid request body")

type signupRequest struct {
	Username string  `json:"username" validate:"max=80"`
	Email    string  `json:"email" validate:"max=120"`
	Password string  `json:"password" validate:"maxbytes=72"`
	Mobile   *string `json:"mobile" validate:"omitempty,max=32"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password" validate:"maxbytes=72"`
}

type googleLoginRequest struct {
	Credential string `json:"credential"`
}

type signupResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type sessionResponse struct {
	Message     string           `json:"message"`
	AccessToken string           `json:"access_token"`
	User        *entity.UserView `json:"user"`
}

type forgotPasswordResponse struct {
	Message    string `json:"message"`
	DebugToken string `json:"debug_token"`
}

type meResponse struct {
	User *entity.UserView `json:"user"`
}

// AuthHandler serves account and session endpoints.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// bind decodes the JSON body into req and runs the struct validation rules.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidBody.WithDetails(err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// Signup creates a local account. No token is issued; the client logs in next.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	_, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, signupResponse{
		Message:  "User created successfully. Please login.",
		Redirect: "/login",
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Message:     "Login successful",
		AccessToken: output.AccessToken,
		User:        output.User,
	})
}

// ForgotPassword issues a reset token and returns it in debug_token, as there is no mail delivery.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, forgotPasswordResponse{
		Message:    "Password reset initiated successfully.",
		DebugToken: output.ResetToken,
	})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}

// GoogleLogin exchanges a Google ID token for a session, creating or linking the account.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.FederatedLogin(c.Request().Context(), &usecase.FederatedLoginInput{Credential: req.Credential})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Message:     "Google Login successful",
		AccessToken: output.AccessToken,
		User:        output.User,
	})
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, meResponse{User: user})
}
