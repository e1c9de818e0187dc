package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authService "github.com/allisson/catalog/internal/auth/service"
	"github.com/allisson/catalog/internal/correlation"
	"github.com/allisson/catalog/internal/httputil"
	"github.com/allisson/catalog/internal/metrics"
)

// Options configures credential extraction for the authentication gate.
type Options struct {
	// HeaderName is the request header carrying the credential (e.g., "X-API-Key").
	HeaderName string
	// QueryParamEnabled permits falling back to a query parameter, consulted only
	// when the header is absent (not merely empty).
	QueryParamEnabled bool
	// QueryParamName is the query parameter used by the fallback.
	QueryParamName string
}

// APIKeyMiddleware is the authentication gate: it accepts or rejects every
// request before it reaches a handler.
//
// The gate:
//  1. Extracts the credential from the configured header, falling back to the
//     configured query parameter only when the header is absent and the
//     fallback is enabled
//  2. Produces exactly one terminal verdict per request
//  3. On a match, attaches an Identity (synthetic name plus bounded credential
//     prefix) to the request context for downstream handlers
//  4. On any other verdict, writes the canonical 401 envelope and aborts
//
// Authentication is a pure synchronous decision per request: no retries, no
// backoff. Internal faults are caught locally and degrade to a rejection; they
// never escape the gate, even though the exception middleware sits outside it.
// The full credential is never logged; only its bounded prefix is.
func APIKeyMiddleware(
	store *authService.KeyStore,
	opts Options,
	clock httputil.Clock,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		verdict, credential := authenticate(c, store, opts, logger)

		if businessMetrics != nil {
			businessMetrics.RecordOperation(c.Request.Context(), "auth", "api_key", verdict.String())
		}

		if verdict == authDomain.VerdictAuthenticated {
			identity := authDomain.NewIdentity(credential)
			ctx := WithIdentity(c.Request.Context(), identity)
			c.Request = c.Request.WithContext(ctx)

			logger.Debug("authentication successful",
				slog.String("client_name", identity.Name),
				slog.String("key_prefix", identity.KeyPrefix))

			c.Next()
			return
		}

		logVerdict(c, verdict, credential, logger)

		requestID := correlation.RequestID(c.Request.Context())
		httputil.WriteError(
			c,
			clock,
			requestID,
			http.StatusUnauthorized,
			httputil.CodeUnauthorized,
			unauthorizedMessage(verdict),
		)
		c.Abort()
	}
}

// authenticate evaluates the credential with a local catch-all: an unexpected
// internal fault is converted to a generic rejection instead of propagating.
func authenticate(
	c *gin.Context,
	store *authService.KeyStore,
	opts Options,
	logger *slog.Logger,
) (verdict authDomain.Verdict, credential string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("authentication fault",
				slog.Any("error", r),
				slog.String("remote_addr", c.ClientIP()))
			verdict = authDomain.VerdictCredentialInvalid
			credential = ""
		}
	}()

	return evaluateCredential(c, store, opts)
}

// evaluateCredential produces the terminal verdict for the request.
func evaluateCredential(
	c *gin.Context,
	store *authService.KeyStore,
	opts Options,
) (authDomain.Verdict, string) {
	credential, presented := extractCredential(c, opts)
	if !presented {
		return authDomain.VerdictNoCredentialPresented, ""
	}
	if strings.TrimSpace(credential) == "" {
		return authDomain.VerdictCredentialEmpty, ""
	}
	if store.IsEmpty() {
		return authDomain.VerdictConfigurationError, credential
	}
	if !store.Contains(credential) {
		return authDomain.VerdictCredentialInvalid, credential
	}
	return authDomain.VerdictAuthenticated, credential
}

// extractCredential reads the credential header, falling back to the query
// parameter only when the header is absent from the request entirely.
func extractCredential(c *gin.Context, opts Options) (string, bool) {
	if values, ok := c.Request.Header[http.CanonicalHeaderKey(opts.HeaderName)]; ok && len(values) > 0 {
		return values[0], true
	}
	if opts.QueryParamEnabled {
		if value, ok := c.GetQuery(opts.QueryParamName); ok {
			return value, true
		}
	}
	return "", false
}

// logVerdict emits the per-verdict log line. ConfigurationError logs at error
// severity: it is an operability signal, not a client mistake.
func logVerdict(c *gin.Context, verdict authDomain.Verdict, credential string, logger *slog.Logger) {
	remoteAddr := slog.String("remote_addr", c.ClientIP())

	switch verdict {
	case authDomain.VerdictConfigurationError:
		logger.Error("authentication failed: credential store is empty", remoteAddr)
	case authDomain.VerdictCredentialInvalid:
		logger.Warn("authentication failed: invalid credential",
			remoteAddr,
			slog.String("key_prefix", authDomain.CredentialPrefix(credential)))
	case authDomain.VerdictCredentialEmpty:
		logger.Warn("authentication failed: empty credential", remoteAddr)
	case authDomain.VerdictNoCredentialPresented:
		logger.Warn("authentication failed: no credential presented", remoteAddr)
	}
}

// unauthorizedMessage keeps rejection messages generic so responses do not
// reveal whether a given key exists or the store is misconfigured.
func unauthorizedMessage(verdict authDomain.Verdict) string {
	if verdict == authDomain.VerdictNoCredentialPresented {
		return "Missing API key"
	}
	return "Invalid API key"
}
