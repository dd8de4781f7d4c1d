package auth

// TokenValidator validates a bearer token and returns the parsed claims.
// The demo server's authentication middleware depends on this interface
// rather than on the jwt package directly.
type TokenValidator interface {
	ValidateToken(token string) (any, error)
}

// TokenValidatorFunc adapts an ordinary function to the TokenValidator interface.
type TokenValidatorFunc func(token string) (any, error)

// ValidateToken implements TokenValidator.
func (f TokenValidatorFunc) ValidateToken(token string) (any, error) {
	return f(token)
}

// CredentialVerifier checks a username/password pair as carried by a
// Basic authorization header.
type CredentialVerifier interface {
	VerifyCredentials(username, password string) error
}

// CredentialVerifierFunc adapts an ordinary function to CredentialVerifier.
type CredentialVerifierFunc func(username, password string) error

// VerifyCredentials implements CredentialVerifier.
func (f CredentialVerifierFunc) VerifyCredentials(username, password string) error {
	return f(username, password)
}
