package services

import (
	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	portssvc "github.com/orgtrack/orgtrack_client/internal/core/ports/services"
)

// Gateways bundles the API ports the services are built on.
type Gateways struct {
	Identity      gateways.IdentityGateway
	Goals         gateways.GoalGateway
	Transactions  gateways.TransactionGateway
	Dashboard     gateways.DashboardGateway
	Members       gateways.MemberGateway
	Organizations gateways.OrganizationGateway
	Users         gateways.UserGateway
}

// Container aggregates the service facades for injection into the UI layer.
type Container struct {
	Registry      *cache.Registry
	Session       portssvc.SessionSvcFacade
	Goals         portssvc.GoalSvcFacade
	Transactions  portssvc.TransactionSvcFacade
	Memberships   portssvc.MembershipSvcFacade
	Organizations portssvc.OrganizationSvcFacade
	Users         portssvc.UserSvcFacade
}

// NewContainer wires every service against the given gateways and a shared
// cache registry.
func NewContainer(g Gateways) *Container {
	registry := cache.NewRegistry()
	session := NewSessionService(g.Identity, registry)
	return &Container{
		Registry:      registry,
		Session:       session,
		Goals:         NewGoalService(g.Goals, session, registry),
		Transactions:  NewTransactionService(g.Transactions, g.Dashboard, session, registry),
		Memberships:   NewMembershipService(g.Members, session, registry),
		Organizations: NewOrganizationService(g.Organizations, session, registry),
		Users:         NewUserService(g.Users, session),
	}
}
