package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/kailas-cloud/campushub/internal/domain/kind"
)

// openPaths never require a key.
var openPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

const bearerPrefix = "Bearer "

// BearerAuthMiddleware guards the catalog API with Bearer API keys.
// Requests under a catalog listed in public (/funding, /funding/tags, ...)
// pass without a key. With no keys configured every request passes.
//
// It runs before routing, so the catalog is read from the first path segment.
func BearerAuthMiddleware(apiKeys []string, public ...kind.Kind) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}
	publicKinds := make(map[kind.Kind]struct{}, len(public))
	for _, k := range public {
		publicKinds[k] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := openPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := publicKinds[catalogSegment(r.URL.Path)]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}
			if !knownKey(keys, token) {
				unauthorized(w, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// catalogSegment returns the leading path segment as a catalog kind.
func catalogSegment(path string) kind.Kind {
	seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return kind.Kind(seg)
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(bearerPrefix):])
	return token, token != ""
}

// knownKey compares in constant time against every key.
func knownKey(keys [][]byte, token string) bool {
	t := []byte(token)
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, t)
	}
	return found == 1
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="campushub"`)
	writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, message)
}
