package authority

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RoleCatalogue is a declarative role seed, typically loaded from a YAML
// file shipped with the deployment:
//
//	roles:
//	  - admin
//	  - user
//	  - editor
type RoleCatalogue struct {
	Roles []string `yaml:"roles"`
}

// LoadRoleCatalogue decodes a YAML role catalogue. Every name is validated
// with ValidateRoleName; a catalogue with an unstorable name is rejected
// whole rather than partially applied.
func LoadRoleCatalogue(r io.Reader) (RoleCatalogue, error) {
	var c RoleCatalogue
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return RoleCatalogue{}, errors.Join(ErrInvalidCatalogue, err)
	}

	for _, name := range c.Roles {
		if err := ValidateRoleName(name); err != nil {
			return RoleCatalogue{}, fmt.Errorf("%w: role %q: %w", ErrInvalidCatalogue, name, err)
		}
	}

	return c, nil
}

// SeedCatalogue ensures the reserved roles plus every catalogue role exist.
// Idempotent; safe to run at every startup.
func (a *Authority) SeedCatalogue(ctx context.Context, c RoleCatalogue) bool {
	ok := a.EnsureDefaultRoles(ctx)
	if len(c.Roles) > 0 {
		ok = a.EnsureRoles(ctx, c.Roles...) && ok
	}
	return ok
}
