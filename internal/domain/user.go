package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims transportadas no token emitido pelo serviço de autenticação.
// Esta API apenas valida o token; emissão e renovação acontecem fora dela.
type Claims struct {
	UserID           int    `json:"user_id"`
	UserName         string `json:"user_name"`
	UserEmail        string `json:"user_email"`
	UserRoleID       int    `json:"user_role_id"`
	CanViewMaterials bool   `json:"can_view_materials"`
	jwt.RegisteredClaims
}

// Entitlements resume as permissões do usuário usadas pela dashboard.
type Entitlements struct {
	CanViewMaterials bool `json:"can_view_materials"`
}

// UserEntitlements extrai as permissões relevantes das claims. Claims nulas
// resultam em permissões mínimas.
func UserEntitlements(claims *Claims) Entitlements {
	if claims == nil {
		return Entitlements{}
	}

	return Entitlements{CanViewMaterials: claims.CanViewMaterials}
}
