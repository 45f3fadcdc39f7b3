package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "ftth_backend/internals/features/users/user/model"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour

	// toleransi jam server vs client
	expirySkew = 30 * time.Second
)

var (
	ErrInvalidToken = errors.New("token tidak valid")
	ErrTokenExpired = errors.New("token kadaluarsa")
)

// Claims hasil parse token (bentuk yang dipakai middleware & service).
type Claims struct {
	Type      string
	UserID    uuid.UUID
	UserName  string
	Role      string
	Division  string
	ExpiresAt time.Time
}

func buildAccessClaims(u userModel.UserModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       TokenTypeAccess,
		"sub":       u.ID.String(),
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"division":  u.DivisionOrEmpty(),
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": TokenTypeRefresh,
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		// jti: dua refresh di detik yang sama tetap beda hash
		"jti": uuid.NewString(),
	}
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken memverifikasi signature HS256, tipe token, dan exp (dengan skew).
func ParseToken(raw, secret, wantType string, now time.Time) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || secret == "" {
		return nil, ErrInvalidToken
	}

	mc := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(raw, mc, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	exp, err := unixClaim(mc["exp"])
	if err != nil {
		return nil, fmt.Errorf("%w: exp", ErrInvalidToken)
	}
	expAt := time.Unix(exp, 0).UTC()
	if now.After(expAt.Add(expirySkew)) {
		return nil, ErrTokenExpired
	}

	typ, _ := mc["typ"].(string)
	if wantType != "" && typ != wantType {
		return nil, fmt.Errorf("%w: typ %q", ErrInvalidToken, typ)
	}

	idRaw, _ := mc["sub"].(string)
	if idRaw == "" {
		idRaw, _ = mc["id"].(string)
	}
	userID, err := uuid.Parse(strings.TrimSpace(idRaw))
	if err != nil {
		return nil, fmt.Errorf("%w: user id", ErrInvalidToken)
	}

	out := &Claims{Type: typ, UserID: userID, ExpiresAt: expAt}
	out.UserName, _ = mc["user_name"].(string)
	out.Role, _ = mc["role"].(string)
	out.Division, _ = mc["division"].(string)
	return out, nil
}

func unixClaim(v any) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case int64:
		return t, nil
	case json.Number:
		return t.Int64()
	default:
		return 0, errors.New("invalid exp")
	}
}

// computeRefreshHash: HMAC-SHA256, disimpan di refresh_tokens.token_hash.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// blacklistUntil: blacklist cukup sampai token itu sendiri expired (+1 menit).
func blacklistUntil(accessToken, secret string, now time.Time) time.Time {
	fallback := now.Add(accessTTLDefault)
	if accessToken == "" {
		return fallback
	}
	c, err := ParseToken(accessToken, secret, "", now)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return now.Add(time.Minute)
		}
		return fallback
	}
	return c.ExpiresAt.Add(time.Minute)
}
