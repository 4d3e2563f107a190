package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/uide-sports/campeonatos-api/models"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:  "jperez",
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "jperez@uide.edu.ec",
		Password:  "contraseña-larga",
	}
}

func TestRegister_CreatesPlayerWithHashedPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.Equal(t, models.RolePlayer, user.Role)
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("contraseña-larga")))
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	input := validRegisterInput()
	input.Password = "corta"
	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_TrimsWhitespace(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	input := validRegisterInput()
	input.Username = "  jperez  "
	input.Email = " jperez@uide.edu.ec "
	user, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "jperez", user.Username)
	assert.Equal(t, "jperez@uide.edu.ec", user.Email)
}

func TestRegister_Conflicts(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	dup := validRegisterInput()
	dup.Email = "otro@uide.edu.ec"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrUsernameConflict)

	dup = validRegisterInput()
	dup.Username = "otro"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrEmailConflict)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), LoginInput{Username: "jperez", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.Equal(t, "jperez", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Login(context.Background(), LoginInput{Username: "jperez", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Username: "nadie", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
