package identity

import (
	"fmt"

	model "card-auction/internal/models"
	"card-auction/internal/repository"
)

// Resolver maps an opaque external identity reference (the subject the
// identity provider authenticated) to a marketplace profile. The engine
// trusts the result; credential validation happens upstream.
type Resolver interface {
	ResolveProfile(externalRef string) (model.Profile, error)
}

// ProfileResolver resolves identities against the catalog store.
type ProfileResolver struct {
	profiles repository.ProfileDB
}

// NewProfileResolver creates a store-backed Resolver.
func NewProfileResolver(profiles repository.ProfileDB) *ProfileResolver {
	return &ProfileResolver{profiles: profiles}
}

// ResolveProfile looks up the profile registered for an external reference.
func (r *ProfileResolver) ResolveProfile(externalRef string) (model.Profile, error) {
	p, err := r.profiles.GetProfileByRef(externalRef)
	if err != nil {
		return model.Profile{}, fmt.Errorf("identity: resolve %s: %w", externalRef, err)
	}
	return p, nil
}
