package link

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("private link base URL or path not configured")

// Generator builds per-send private links. The token is a fresh random UUID
// on every call and is never derived from the lead, so a prior link for the
// same lead cannot be guessed from a new one.
type Generator struct {
	BaseURL string
	Path    string
}

func NewGenerator(baseURL, path string) *Generator {
	return &Generator{BaseURL: baseURL, Path: path}
}

// Generate returns the full link and the raw token it embeds.
func (g *Generator) Generate() (string, string, error) {
	if g.BaseURL == "" || g.Path == "" {
		return "", "", ErrNotConfigured
	}
	token := uuid.NewString()
	return g.BaseURL + g.Path + token, token, nil
}
