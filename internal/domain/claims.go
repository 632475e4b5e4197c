package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token emitido pelo serviço de identidade externo. A API só
// valida e lê; criação de usuário e sessão ficam fora deste serviço.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
