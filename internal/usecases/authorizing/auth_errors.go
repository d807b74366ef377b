package authorizing

import (
	"errors"
	"fmt"
)

// Erros de autorização conhecidos
var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrMalformedToken        = errors.New("token malformado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrMaterialsRestricted   = errors.New("perfil sem acesso a materiais")
)

// AuthError é um erro com contexto adicional para autorização
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrInsufficientPrivilege)
}

// NewAuthError cria um novo erro de autorização
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
