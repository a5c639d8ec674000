package cda

// SyncParams describes how a synchronization run is seeded: with no token
// (initial sync), with an explicit token, or with a previously synchronized
// space snapshot.
type SyncParams struct {
	Token string
	Space *SynchronizedSpace
}

// SyncOption configures a synchronization request.
type SyncOption func(*SyncParams)

// WithSyncToken seeds the sync from an explicit token.
func WithSyncToken(token string) SyncOption {
	return func(p *SyncParams) {
		p.Token = token
	}
}

// WithSyncedSpace seeds the sync from a previously synchronized space,
// continuing from its next sync token.
func WithSyncedSpace(space *SynchronizedSpace) SyncOption {
	return func(p *SyncParams) {
		p.Space = space
	}
}

// NewSyncParams applies opts to an empty SyncParams.
func NewSyncParams(opts ...SyncOption) *SyncParams {
	params := &SyncParams{}
	for _, opt := range opts {
		opt(params)
	}

	return params
}

// ResolveToken returns the token the request should carry. An explicit token
// takes precedence over a snapshot; an empty result means "request a full
// initial synchronization".
func (p *SyncParams) ResolveToken() string {
	if p.Token != "" {
		return p.Token
	}

	if p.Space != nil {
		return p.Space.NextSyncToken
	}

	return ""
}
