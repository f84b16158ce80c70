package models

import "github.com/golang-jwt/jwt/v5"

// MerchantClaims are the JWT claims carried by merchant API tokens.
type MerchantClaims struct {
	MerchantID int64  `json:"merchant_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}
