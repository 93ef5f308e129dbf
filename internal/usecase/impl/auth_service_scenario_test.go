package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	"marquee/internal/infra/persistence/memory"
	mockService "marquee/internal/mocks/service"
	"marquee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthScenario_SignupLoginResetFlow(t *testing.T) {
	srv, tokens := newScenarioService(t, nil)
	ctx := context.Background()

	signup, err := srv.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", signup.User.Username)

	session, err := srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, claims.UserID)

	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	forgot, err := srv.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "a@x.com"})
	require.NoError(t, err)
	t1 := forgot.ResetToken
	assert.Len(t, t1, 22)

	require.NoError(t, srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: t1, NewPassword: "newpw"}))

	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "newpw"})
	require.NoError(t, err)

	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: t1, NewPassword: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
}

func TestAuthScenario_NewResetTokenInvalidatesPrevious(t *testing.T) {
	srv, _ := newScenarioService(t, nil)
	ctx := context.Background()

	_, err := srv.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	first, err := srv.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "a@x.com"})
	require.NoError(t, err)
	second, err := srv.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ResetToken, second.ResetToken)

	err = srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: first.ResetToken, NewPassword: "newpw"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)

	require.NoError(t, srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: second.ResetToken, NewPassword: "newpw"}))
}

func TestAuthScenario_ForgotPasswordDuringResetKeepsNewPassword(t *testing.T) {
	repo := &interleavingRepo{UserRepository: memory.NewUserRepository()}
	srv, _ := newScenarioServiceWithRepo(t, nil, repo)
	ctx := context.Background()

	_, err := srv.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	first, err := srv.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "a@x.com"})
	require.NoError(t, err)

	// The reset commits after the second request has read the user but before it writes.
	repo.beforeSetResetToken = func() {
		require.NoError(t, srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: first.ResetToken, NewPassword: "newpw"}))
	}
	second, err := srv.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "newpw"})
	require.NoError(t, err)
	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	require.NoError(t, srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: second.ResetToken, NewPassword: "third"}))
}

func TestAuthScenario_LinkDuringResetKeepsNewPassword(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	verifier.EXPECT().Configured().Return(true)
	verifier.EXPECT().Verify(context.Background(), "cred").Return(&service.FederatedIdentity{
		SubjectID: "sub-4", Email: "a@x.com", DisplayName: "Alice A", EmailVerified: true,
	}, nil)

	repo := &interleavingRepo{UserRepository: memory.NewUserRepository()}
	srv, _ := newScenarioServiceWithRepo(t, verifier, repo)
	ctx := context.Background()

	_, err := srv.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	forgot, err := srv.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "a@x.com"})
	require.NoError(t, err)

	repo.beforeLink = func() {
		require.NoError(t, srv.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: forgot.ResetToken, NewPassword: "newpw"}))
	}
	session, err := srv.FederatedLogin(ctx, &usecase.FederatedLoginInput{Credential: "cred"})
	require.NoError(t, err)
	assert.True(t, session.User.Google)

	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "newpw"})
	require.NoError(t, err)
	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthScenario_ConcurrentSignupsSameEmail(t *testing.T) {
	srv, _ := newScenarioService(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, username := range []string{"alice", "alicia"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = srv.Signup(ctx, &usecase.SignupInput{Username: username, Email: "a@x.com", Password: "pw123"})
		}()
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestAuthScenario_LoginFailuresAreUniform(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	verifier.EXPECT().Configured().Return(true)
	verifier.EXPECT().Verify(context.Background(), "google-credential").Return(&service.FederatedIdentity{
		SubjectID: "sub-1", Email: "g@x.com", DisplayName: "Gina G", EmailVerified: true,
	}, nil)

	srv, _ := newScenarioService(t, verifier)
	ctx := context.Background()

	_, err := srv.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	_, err = srv.FederatedLogin(ctx, &usecase.FederatedLoginInput{Credential: "google-credential"})
	require.NoError(t, err)

	cases := []*usecase.LoginInput{
		{Username: "alice", Password: "wrong"},
		{Username: "nobody", Password: "pw123"},
		{Username: "ginag", Password: ""},
		{Username: "ginag", Password: "anything"},
	}
	for _, input := range cases {
		_, err := srv.Login(ctx, input)
		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	}
}

func TestAuthScenario_FederatedLoginIsIdempotent(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	verifier.EXPECT().Configured().Return(true)
	verifier.EXPECT().Verify(context.Background(), "cred").Return(&service.FederatedIdentity{
		SubjectID: "sub-1", Email: "jane@x.com", DisplayName: "Jane Doe", EmailVerified: true,
	}, nil).Twice()

	srv, _ := newScenarioService(t, verifier)
	ctx := context.Background()

	first, err := srv.FederatedLogin(ctx, &usecase.FederatedLoginInput{Credential: "cred"})
	require.NoError(t, err)
	second, err := srv.FederatedLogin(ctx, &usecase.FederatedLoginInput{Credential: "cred"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "janedoe", first.User.Username)
	assert.True(t, first.User.Google)
}

func TestAuthScenario_FederatedUsernameCollision(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	verifier.EXPECT().Configured().Return(true)
	verifier.EXPECT().Verify(context.Background(), "cred").Return(&service.FederatedIdentity{
		SubjectID: "sub-2", Email: "jane.other@x.com", DisplayName: "Jane Doe", EmailVerified: true,
	}, nil)

	srv, _ := newScenarioService(t, verifier)
	ctx := context.Background()

	_, err := srv.Signup(ctx, &usecase.SignupInput{Username: "janedoe", Email: "jane@x.com", Password: "pw"})
	require.NoError(t, err)

	session, err := srv.FederatedLogin(ctx, &usecase.FederatedLoginInput{Credential: "cred"})
	require.NoError(t, err)

	assert.NotEqual(t, "janedoe", session.User.Username)
	assert.True(t, strings.HasPrefix(session.User.Username, "janedoe"))
	assert.Len(t, session.User.Username, len("janedoe")+4)
}

func TestAuthScenario_FederatedLinksExistingLocalAccount(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	verifier.EXPECT().Configured().Return(true)
	verifier.EXPECT().Verify(context.Background(), "cred").Return(&service.FederatedIdentity{
		SubjectID: "sub-3", Email: "a@x.com", DisplayName: "Alice A", EmailVerified: true,
	}, nil)

	srv, _ := newScenarioService(t, verifier)
	ctx := context.Background()

	signup, err := srv.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	session, err := srv.FederatedLogin(ctx, &usecase.FederatedLoginInput{Credential: "cred"})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, session.User.ID)
	assert.True(t, session.User.Google)

	// The local password still works after linking.
	_, err = srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
}
