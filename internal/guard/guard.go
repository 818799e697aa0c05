package guard

import (
	"context"

	"devlink_backend/internal/logger"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/session"
)

// Route targets used by guard redirects.
const (
	LoginPath              = "/auth/login"
	ClientDashboardPath    = "/dashboard/client"
	DeveloperDashboardPath = "/dashboard/developer"
)

// State of one check cycle.
type State int

const (
	StateInitializing State = iota
	StateChecking
	StateAuthorized
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one check cycle. RedirectTo is set only in
// StateRedirecting.
type Decision struct {
	State      State
	RedirectTo string
}

// DashboardPath returns the dashboard root for a role.
func DashboardPath(t models.UserType) string {
	if t == models.UserTypeClient {
		return ClientDashboardPath
	}
	return DeveloperDashboardPath
}

// otherDashboard is where a role mismatch is sent: the client guard
// redirects non-clients to the developer dashboard and vice versa.
func otherDashboard(required models.UserType) string {
	if required == models.UserTypeClient {
		return DeveloperDashboardPath
	}
	return ClientDashboardPath
}

// Guard gates a role-restricted subtree. One instance per required
// role; stateless and safe for concurrent checks.
type Guard struct {
	required models.UserType
	profiles repositories.ProfileRepository
}

func New(required models.UserType, profiles repositories.ProfileRepository) *Guard {
	return &Guard{
		required: required,
		profiles: profiles,
	}
}

// Check runs one full check cycle for the given identity and returns
// the terminal decision. An absent identity and a failed profile
// lookup both resolve to the login redirect: the lookup failure is
// fail-closed, never an error surfaced to the caller.
func (g *Guard) Check(ctx context.Context, identity *session.Identity) Decision {
	if identity == nil {
		return Decision{State: StateRedirecting, RedirectTo: LoginPath}
	}

	profile, err := g.profiles.FindByUserID(ctx, identity.ID)
	if err != nil {
		logger.CtxWithError(ctx, "guard profile lookup failed", err,
			"identity_id", identity.ID,
			"required_type", string(g.required),
		)
		return Decision{State: StateRedirecting, RedirectTo: LoginPath}
	}

	if profile.UserType == g.required {
		return Decision{State: StateAuthorized}
	}
	return Decision{State: StateRedirecting, RedirectTo: otherDashboard(g.required)}
}
