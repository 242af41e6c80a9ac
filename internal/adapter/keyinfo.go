package adapter

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyKind classifies backend-service access keys.
type KeyKind string

// Known key kinds. Legacy keys are JWTs; newer keys carry a readable prefix.
const (
	KeyKindJWT         KeyKind = "jwt"
	KeyKindPublishable KeyKind = "publishable"
	KeyKindSecret      KeyKind = "secret"
	KeyKindOpaque      KeyKind = "opaque"
)

const (
	publishableKeyPrefix = "sb_publishable_"
	secretKeyPrefix      = "sb_secret_"

	roleServiceRole = "service_role"
)

// KeyInfo is what can be learned from an access key without contacting the
// backend service. The key signature is never verified.
type KeyInfo struct {
	Kind      KeyKind   `json:"kind"`
	Role      string    `json:"role,omitempty"`
	Ref       string    `json:"ref,omitempty"`
	Issuer    string    `json:"issuer,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// Privileged reports whether the key bypasses row level security and must not
// reach browsers.
func (k KeyInfo) Privileged() bool {
	return k.Kind == KeyKindSecret || k.Role == roleServiceRole
}

// Expired reports whether the key carries an expiry that lies before now.
func (k KeyInfo) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && k.ExpiresAt.Before(now)
}

// InspectKey classifies key and, for JWT keys, extracts role, project ref,
// issuer and expiry from the unverified claims.
func InspectKey(key string) KeyInfo {
	switch {
	case strings.HasPrefix(key, publishableKeyPrefix):
		return KeyInfo{Kind: KeyKindPublishable, Role: "anon"}
	case strings.HasPrefix(key, secretKeyPrefix):
		return KeyInfo{Kind: KeyKindSecret, Role: roleServiceRole}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return KeyInfo{Kind: KeyKindOpaque}
	}

	info := KeyInfo{Kind: KeyKindJWT}
	info.Role, _ = claims["role"].(string)
	info.Ref, _ = claims["ref"].(string)
	info.Issuer, _ = claims.GetIssuer()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info
}
