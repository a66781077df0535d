package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/insumos-api/internal/application/auth"
	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/insumos-api/pkg/jwt"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error { r.byEmail[u.Email] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Update(u *entity.User) error                    { r.byEmail[u.Email] = u; return nil }
func (r *memUserRepo) Delete(id string) error                         { return nil }

const (
	loginSecret = "auth-test-secret"
	loginEmail  = "operador@deposito.com"
	loginPass   = "secreto123"
)

func newAuthFixture(t *testing.T, active bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(loginPass), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &memUserRepo{byEmail: map[string]*entity.User{
		loginEmail: {
			ID:           "user-1",
			Email:        loginEmail,
			PasswordHash: string(hash),
			RoleID:       "rol-1",
			Active:       active,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     loginSecret,
		ExpMinutes: 60,
		Issuer:     "insumos-api-test",
	})
}

// Credenciales válidas → token parseable con los claims del usuario.
func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthFixture(t, true)

	out, err := uc.Login(dto.LoginRequest{Email: loginEmail, Password: loginPass})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, loginEmail, out.Usuario.Email)

	userID, roleID, err := pkgjwt.Parse(loginSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "rol-1", roleID)
}

// Email desconocido y contraseña errónea responden igual: no autorizado.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthFixture(t, true)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@deposito.com", Password: loginPass})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: loginEmail, Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario desactivado → prohibido aunque la contraseña sea correcta.
func TestLogin_UsuarioInactivo_Prohibido(t *testing.T) {
	uc := newAuthFixture(t, false)

	_, err := uc.Login(dto.LoginRequest{Email: loginEmail, Password: loginPass})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
