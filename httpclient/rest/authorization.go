package rest

import (
	"encoding/base64"

	"github.com/kbukum/restkit/httpclient"
)

// HeaderAuthorization is the name of the header every scheme writes.
const HeaderAuthorization = "Authorization"

// Authorization describes how a client authenticates. It is one of
// NoAuthorization, BasicAuthorization or BearerAuthorization.
type Authorization interface {
	isAuthorization()
}

// NoAuthorization sends no Authorization header.
type NoAuthorization struct{}

// BasicAuthorization sends RFC 7617 basic credentials.
type BasicAuthorization struct {
	Username string
	Password string
}

// BearerAuthorization sends an opaque bearer token.
type BearerAuthorization struct {
	Token string
}

func (NoAuthorization) isAuthorization()     {}
func (BasicAuthorization) isAuthorization()  {}
func (BearerAuthorization) isAuthorization() {}

// NoAuth returns the empty authorization.
func NoAuth() Authorization { return NoAuthorization{} }

// BasicAuth returns basic authorization for username and password.
func BasicAuth(username, password string) Authorization {
	return BasicAuthorization{Username: username, Password: password}
}

// BearerAuth returns bearer authorization for token.
func BearerAuth(token string) Authorization {
	return BearerAuthorization{Token: token}
}

// AuthorizationHeader builds the header for a, or reports false when a
// sends nothing. Credentials are not validated.
func AuthorizationHeader(a Authorization) (httpclient.Header, bool) {
	switch auth := a.(type) {
	case BasicAuthorization:
		credentials := base64.StdEncoding.EncodeToString([]byte(auth.Username + ":" + auth.Password))
		return httpclient.Header{Name: HeaderAuthorization, Value: "Basic " + credentials}, true
	case BearerAuthorization:
		return httpclient.Header{Name: HeaderAuthorization, Value: "Bearer " + auth.Token}, true
	default:
		return httpclient.Header{}, false
	}
}
