package domain

import "context"

// TextGenerator defines the port for the generative model. It takes a fully
// built prompt and returns the model's raw text output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Translator defines the port for the translation collaborator. targetCode is
// a resolved language code, not a display name.
type Translator interface {
	Translate(ctx context.Context, text string, targetCode string) (string, error)
}

// SeenStore tracks the question texts already served per topic fingerprint.
// Implementations guard their state internally; callers never hold a lock
// across generation or translation calls.
type SeenStore interface {
	// GetSeen returns the current seen-set for a fingerprint. An absent or
	// expired entry yields an empty (non-nil) set.
	GetSeen(ctx context.Context, fingerprint string) (map[string]struct{}, error)

	// Commit atomically replaces the seen-set for a fingerprint and bumps its
	// expiry, measured from this write.
	Commit(ctx context.Context, fingerprint string, seen map[string]struct{}) error

	// Sweep drops expired entries. Called lazily on the request path; stores
	// with server-side expiry may make this a no-op.
	Sweep(ctx context.Context)

	// Ping checks the health of the underlying store.
	Ping(ctx context.Context) error
}
