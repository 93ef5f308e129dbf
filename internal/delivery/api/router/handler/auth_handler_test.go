package handler

import (
	"net/http"
	"strings"
	"testing"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	mockUsecase "marquee/internal/mocks/usecase"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	mobile := "0912"

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantBody   string
		wantErr    error
	}{
		{
			name: "created",
			body: `{"username":"alice","email":"a@x.com","password":"pw123","mobile":"0912"}`,
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
					Username: "alice",
					Email:    "a@x.com",
					Password: "pw123",
					Mobile:   &mobile,
				}).Return(&usecase.SignupOutput{User: &entity.UserView{Username: "alice"}}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"User created successfully. Please login.","redirect":"/login"}`,
		},
		{
			name: "existing user",
			body: `{"username":"alice","email":"a@x.com","password":"pw123"}`,
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:    "malformed json",
			body:    `{"username":`,
			wantErr: errInvalidBody,
		},
		{
			name:    "username longer than the column",
			body:    `{"username":"` + strings.Repeat("u", 81) + `","email":"a@x.com","password":"pw"}`,
			wantErr: domainerrors.NewValidationError("username must be at most 80 characters"),
		},
		{
			name:    "password over the bcrypt byte limit",
			body:    `{"username":"alice","email":"a@x.com","password":"` + strings.Repeat("é", 40) + `"}`,
			wantErr: domainerrors.NewValidationError("password must be at most 72 bytes"),
		},
		{
			name:    "mobile longer than the column",
			body:    `{"username":"alice","email":"a@x.com","password":"pw","mobile":"` + strings.Repeat("9", 33) + `"}`,
			wantErr: domainerrors.NewValidationError("mobile must be at most 32 characters"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newJSONContext(http.MethodPost, "/api/signup", tt.body)
			err := NewAuthHandler(uc).Signup(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw123"}).
		Return(&usecase.SessionOutput{
			AccessToken: "signed.jwt.token",
			User:        &entity.UserView{ID: userID, Username: "alice", Email: "a@x.com"},
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/login", `{"username":"alice","password":"pw123"}`)
	require.NoError(t, NewAuthHandler(uc).Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Login successful",
		"access_token": "signed.jwt.token",
		"user": {"id": "`+userID.String()+`", "username": "alice", "email": "a@x.com", "mobile": null, "google_linked": false}
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newJSONContext(http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`)

	assert.ErrorIs(t, NewAuthHandler(uc).Login(c), domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "a@x.com"}).
		Return(&usecase.ForgotPasswordOutput{ResetToken: "T1"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/forgot-password", `{"email":"a@x.com"}`)
	require.NoError(t, NewAuthHandler(uc).ForgotPassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password reset initiated successfully.","debug_token":"T1"}`, rec.Body.String())
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().ForgotPassword(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)

	c, _ := newJSONContext(http.MethodPost, "/api/forgot-password", `{"email":"nobody@x.com"}`)

	assert.ErrorIs(t, NewAuthHandler(uc).ForgotPassword(c), domainerrors.ErrUserNotFound)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "T1", NewPassword: "newpw"}).Return(nil).Once()
	uc.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "T1", NewPassword: "x"}).
		Return(domainerrors.ErrInvalidResetToken).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/reset-password", `{"token":"T1","new_password":"newpw"}`)
	require.NoError(t, NewAuthHandler(uc).ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password updated successfully"}`, rec.Body.String())

	c, _ = newJSONContext(http.MethodPost, "/api/reset-password", `{"token":"T1","new_password":"x"}`)
	assert.ErrorIs(t, NewAuthHandler(uc).ResetPassword(c), domainerrors.ErrInvalidResetToken)
}

func TestAuthHandler_ResetPassword_OverByteLimit(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)

	body := `{"token":"T1","new_password":"` + strings.Repeat("é", 40) + `"}`
	c, _ := newJSONContext(http.MethodPost, "/api/reset-password", body)

	err := NewAuthHandler(uc).ResetPassword(c)
	assert.ErrorIs(t, err, domainerrors.NewValidationError("new_password must be at most 72 bytes"))
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().FederatedLogin(mock.Anything, &usecase.FederatedLoginInput{Credential: "id-token"}).
		Return(&usecase.SessionOutput{
			AccessToken: "signed",
			User:        &entity.UserView{Username: "alicesmith", Google: true},
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/google-login", `{"credential":"id-token"}`)
	require.NoError(t, NewAuthHandler(uc).GoogleLogin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Google Login successful"`)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed"`)
	assert.Contains(t, rec.Body.String(), `"google_linked":true`)
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().CurrentUser(mock.Anything, userID).Return(&entity.UserView{ID: userID, Username: "alice"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/me", "")
	deliverycontext.SetUserID(c, userID)
	require.NoError(t, NewAuthHandler(uc).Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestAuthHandler_Me_WithoutUser(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)

	c, _ := newJSONContext(http.MethodGet, "/api/me", "")

	assert.ErrorIs(t, NewAuthHandler(uc).Me(c), domainerrors.ErrTokenInvalid)
}
