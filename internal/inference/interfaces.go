package inference

import "context"

// Completer sends a prompt to a generative text engine and returns the raw
// text of the model's reply. Implementations hold no per-call state and must
// be safe for concurrent use; they never retry — a failed call is returned
// to the caller, who may retry the whole request.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
