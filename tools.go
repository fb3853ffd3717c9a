//go:build tools

package tools

// Tool dependencies are not tracked with blank imports. mockery is used as
// an installed binary; run `mockery` from the module root to regenerate
// pkg/rep/mocks from .mockery.yaml.
