package llm

import "context"

type purposeKey struct{}

// UnlabelledPurpose is recorded for model calls made without WithPurpose.
const UnlabelledPurpose = "unlabelled"

// WithPurpose tags model calls made with ctx, so the event log can tell
// crop-doctor turns apart from other callers.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or UnlabelledPurpose.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return UnlabelledPurpose
}
