package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
)

const (
	// DefaultAccessTTL vale quando a config não define um TTL de
	// access. O login emite com TTL próprio (24h na config).
	DefaultAccessTTL = 15 * time.Minute

	// RefreshTTL vale quando a config não define um TTL de refresh.
	RefreshTTL = 7 * 24 * time.Hour
)

// Claims carrega a identidade do usuário (sub = email) nos tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService emite e valida tokens assinados com segredo simétrico
// (HS256). O segredo é definido no startup e nunca muda durante a vida
// do processo; não há revogação: um token vale até expirar.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService recebe os TTLs da config; zero usa os defaults do
// pacote.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = RefreshTTL
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// CreateAccessToken assina um access token para o subject informado.
// ttl <= 0 usa o TTL de access configurado.
func (s *TokenService) CreateAccessToken(sub string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.accessTTL
	}
	return s.sign(sub, ttl)
}

// CreateRefreshToken assina um refresh token com o TTL configurado.
func (s *TokenService) CreateRefreshToken(sub string) (string, error) {
	return s.sign(sub, s.refreshTTL)
}

func (s *TokenService) sign(sub string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify é a validação leniente usada pelo fluxo de refresh: qualquer
// falha (assinatura, expiração, token malformado) retorna nil, sem
// distinção entre os casos.
func (s *TokenService) Verify(tokenString string) *Claims {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// DecodeStrict é usada na resolução do usuário corrente: qualquer
// falha vira um erro de negócio "unauthenticated" (401), nunca um erro
// cru de parse.
func (s *TokenService) DecodeStrict(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}
	if claims.Subject == "" {
		return nil, httperr.ErrBusiness("unauthenticated")
	}
	return claims, nil
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}

	return claims, nil
}
