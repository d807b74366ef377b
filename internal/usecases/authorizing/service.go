package authorizing

import (
	"errors"
	"fmt"

	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
)

// Authorizer valida tokens emitidos pela plataforma e expõe as
// permissões do usuário para o restante da dashboard.
//
// A dashboard não emite tokens: login e cadastro acontecem na
// plataforma principal, e o front envia o JWT resultante no
// cabeçalho Authorization.
type Authorizer interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	Entitlements(claims *domain.Claims) domain.Entitlements
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authorizer {
	return &Service{cfg: cfg}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Faça login novamente na plataforma")
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, NewAuthError(ErrMalformedToken, apiErrors.ErrInvalidToken, "Token malformado")
		default:
			return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
		}
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	// Tokens sem identificação de usuário não servem para a dashboard
	if claims.UserID == 0 {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem identificação de usuário")
	}

	return claims, nil
}

// Entitlements deriva as permissões efetivas das claims do token
func (s *Service) Entitlements(claims *domain.Claims) domain.Entitlements {
	return domain.UserEntitlements(claims)
}
