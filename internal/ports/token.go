package ports

import "context"

// AccessTokenPort yields the current access token injected into every
// request template's Authorization header. The boolean is false when no
// token is configured.
type AccessTokenPort interface {
	AccessToken(ctx context.Context) (string, bool, error)
}
