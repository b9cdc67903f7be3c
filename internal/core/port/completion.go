package port

import "context"

// CompletionClient is the outbound port to an opaque text-completion
// provider. One call sends a system instruction plus a user message and
// returns the raw reply text. The engine makes exactly one request per
// generation attempt and treats every failure uniformly; retries, if
// any, belong to the operator layer.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
