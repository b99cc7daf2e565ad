package identity

import (
	"net/http"
	"strconv"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// HeaderResolver reads the identity the authentication layer in front of
// this service attaches to each request. Token validation itself happens
// upstream; absent or malformed headers simply mean a guest.
type HeaderResolver struct{}

// NewHeaderResolver creates a new HeaderResolver
func NewHeaderResolver() port.IdentityResolver {
	return HeaderResolver{}
}

// Resolve returns the identity carried by the request, or nil for a guest
func (HeaderResolver) Resolve(r *http.Request) *domain.Identity {
	raw := r.Header.Get("X-User-Id")
	if raw == "" {
		return nil
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	role := domain.Role(r.Header.Get("X-User-Role"))
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.Identity{UserID: userID, Role: role}
}
