// Package auth holds the credential contracts used by the demo server.
//
// Subpackages:
//
//   - auth/jwt      HMAC-signed bearer tokens with a generic claims type
//   - auth/password bcrypt hashing and an in-memory basic-auth credential store
//   - auth/authctx  request context propagation of the authenticated principal
//
// The REST client itself never verifies credentials; it only encodes them
// (see httpclient/rest.Authorization). These packages exist so the client
// can be exercised end to end against a server that actually checks them.
package auth
