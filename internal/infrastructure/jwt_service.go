package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/domain"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore tracks live refresh-token JTIs. Refresh tokens are single-use:
// a JTI is registered at issuance and consumed exactly once on refresh.
type TokenStore interface {
	Save(ctx context.Context, jti, userId string, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (bool, error)
}

type JWTService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	store      TokenStore
}

func NewJWTService(secret string, accessTTL, refreshTTL time.Duration, store TokenStore) *JWTService {
	return &JWTService{
		secretKey:  []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		store:      store,
	}
}

// IssuePair signs a short-lived access token and a long-lived refresh token
// for the user and registers the refresh JTI so it can be consumed later.
func (j *JWTService) IssuePair(ctx context.Context, userId uuid.UUID) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id":    userId.String(),
		"token_type": tokenTypeAccess,
		"iat":        now.Unix(),
		"exp":        now.Add(j.accessTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(j.secretKey)
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	refreshClaims := jwt.MapClaims{
		"user_id":    userId.String(),
		"token_type": tokenTypeRefresh,
		"jti":        jti,
		"iat":        now.Unix(),
		"exp":        now.Add(j.refreshTTL).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(j.secretKey)
	if err != nil {
		return nil, err
	}

	if err := j.store.Save(ctx, jti, userId.String(), j.refreshTTL); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccess validates an access token and returns the user it was issued to.
func (j *JWTService) VerifyAccess(tokenString string) (uuid.UUID, error) {
	claims, err := j.parse(tokenString, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}
	return userIdFromClaims(claims)
}

// Refresh consumes a refresh token and rotates the pair. A refresh token that
// was already consumed, expired, or never issued fails with ErrUnauthorized.
func (j *JWTService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := j.parse(refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, domain.ErrUnauthorized
	}

	consumed, err := j.store.Consume(ctx, jti)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, domain.ErrUnauthorized
	}

	userId, err := userIdFromClaims(claims)
	if err != nil {
		return nil, err
	}

	return j.IssuePair(ctx, userId)
}

func (j *JWTService) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func userIdFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userId, nil
}
