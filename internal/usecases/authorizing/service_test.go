package authorizing

import (
	"testing"
	"time"

	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func newTestService() *Service {
	cfg := &config.Config{}
	cfg.Auth.Secret = testSecret
	return &Service{cfg: cfg}
}

func signToken(t *testing.T, claims *domain.Claims, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name         string
		token        func(t *testing.T) string
		expectedErr  error
		expectedCode string
		validate     func(t *testing.T, claims *domain.Claims)
	}{
		{
			name: "Deve aceitar token válido e devolver as claims",
			token: func(t *testing.T) string {
				return signToken(t, &domain.Claims{
					UserID:           42,
					UserName:         "Maria",
					UserEmail:        "maria@importadora.com.br",
					UserRoleID:       2,
					CanViewMaterials: true,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}, testSecret)
			},
			validate: func(t *testing.T, claims *domain.Claims) {
				assert.Equal(t, 42, claims.UserID)
				assert.Equal(t, "Maria", claims.UserName)
				assert.Equal(t, 2, claims.UserRoleID)
				assert.True(t, claims.CanViewMaterials)
			},
		},
		{
			name: "Deve rejeitar token expirado",
			token: func(t *testing.T) string {
				return signToken(t, &domain.Claims{
					UserID: 42,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
					},
				}, testSecret)
			},
			expectedErr:  ErrExpiredToken,
			expectedCode: apiErrors.ErrExpiredToken,
		},
		{
			name: "Deve rejeitar token assinado com outro segredo",
			token: func(t *testing.T) string {
				return signToken(t, &domain.Claims{
					UserID: 42,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}, "outro-segredo")
			},
			expectedErr:  ErrInvalidToken,
			expectedCode: apiErrors.ErrInvalidToken,
		},
		{
			name: "Deve rejeitar token malformado",
			token: func(t *testing.T) string {
				return "isto-nao-eh-um-jwt"
			},
			expectedErr:  ErrMalformedToken,
			expectedCode: apiErrors.ErrInvalidToken,
		},
		{
			name: "Deve rejeitar token sem identificação de usuário",
			token: func(t *testing.T) string {
				return signToken(t, &domain.Claims{
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}, testSecret)
			},
			expectedErr:  ErrInvalidToken,
			expectedCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)

				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.expectedCode, authErr.Code)
				assert.True(t, IsAuthorizationError(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, claims)
			if tt.validate != nil {
				tt.validate(t, claims)
			}
		})
	}
}

func TestService_Entitlements(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		claims   *domain.Claims
		expected domain.Entitlements
	}{
		{
			name:     "Usuário com acesso a materiais",
			claims:   &domain.Claims{UserID: 1, CanViewMaterials: true},
			expected: domain.Entitlements{CanViewMaterials: true},
		},
		{
			name:     "Usuário sem acesso a materiais",
			claims:   &domain.Claims{UserID: 2},
			expected: domain.Entitlements{CanViewMaterials: false},
		},
		{
			name:     "Claims ausentes não concedem nada",
			claims:   nil,
			expected: domain.Entitlements{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Entitlements(tt.claims))
		})
	}
}
