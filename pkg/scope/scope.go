package scope

import (
	"encoding/base64"
	"encoding/json"

	"report-srv/internal/model"
)

// Payload carries the identity claims extracted from a verified token.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	Issuer    string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// NewScope creates a request scope from a token payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:   payload.UserID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// CreateScopeHeader encodes a scope as a base64 JSON header value for
// service-to-service calls.
func CreateScopeHeader(scope model.Scope) (string, error) {
	jsonData, err := json.Marshal(scope)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a base64 JSON scope header.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var scope model.Scope
	if err := json.Unmarshal(jsonData, &scope); err != nil {
		return model.Scope{}, err
	}
	return scope, nil
}
