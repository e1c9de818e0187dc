// Package domain defines authentication domain types: the closed verdict set
// produced by the authentication gate and the identity attached on success.
package domain

// Verdict is the terminal authentication decision for one request. Exactly one
// verdict is produced per request; every non-Authenticated verdict short-circuits
// the pipeline before the application handler.
type Verdict string

const (
	// VerdictNoCredentialPresented means no credential source yielded a value.
	// This is a "no opinion" result rather than an explicit rejection; with no
	// other scheme composed, it still never reaches the application handler.
	VerdictNoCredentialPresented Verdict = "no_credential_presented"

	// VerdictCredentialEmpty means a credential was presented but is empty or
	// all-whitespace. Explicit authentication failure.
	VerdictCredentialEmpty Verdict = "credential_empty"

	// VerdictCredentialInvalid means the credential matched no entry in the store.
	VerdictCredentialInvalid Verdict = "credential_invalid"

	// VerdictConfigurationError means the credential store is empty. This is an
	// operability signal, not a client error, and is logged at error severity.
	VerdictConfigurationError Verdict = "configuration_error"

	// VerdictAuthenticated means the credential matched and an identity was attached.
	VerdictAuthenticated Verdict = "authenticated"
)

// String returns the verdict label used in logs and metrics.
func (v Verdict) String() string {
	return string(v)
}

// credentialPrefixLength bounds how much of a credential may ever appear in
// logs or identity claims.
const credentialPrefixLength = 8

// IdentityName is the fixed synthetic display name attached on authentication.
const IdentityName = "api-key-client"

// Identity is the authenticated caller attached to the request on success.
// It carries the bounded credential prefix, never the full credential.
type Identity struct {
	Name      string
	KeyPrefix string
}

// NewIdentity builds the identity for a matched credential.
func NewIdentity(credential string) *Identity {
	return &Identity{
		Name:      IdentityName,
		KeyPrefix: CredentialPrefix(credential),
	}
}

// CredentialPrefix returns the first 8 characters of the credential, or the
// whole string if shorter. This is the only form of a credential that may be
// written to logs or claims.
func CredentialPrefix(credential string) string {
	if len(credential) <= credentialPrefixLength {
		return credential
	}
	return credential[:credentialPrefixLength]
}
