package core

import "context"

// Generator is the external text-generation capability. Implementations
// return the raw model output for a fully built prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
