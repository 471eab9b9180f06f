package embedding

import "context"

// Provider returns a fixed-length embedding vector for a text. Provider
// errors carry utils.CodeUnavailable or utils.CodeTimeout; a provider never
// returns an empty vector with a nil error.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
