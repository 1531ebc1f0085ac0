// orgtrack_client resolves a session against the orgtrack API and prints the
// profile highlight and dashboard the way the UI would render them. Mostly a
// wiring reference and smoke check for the SDK.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/orgtrack/orgtrack_client/internal/adapters/restapi"
	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/services"
	"github.com/orgtrack/orgtrack_client/internal/platform/applog"
	"github.com/orgtrack/orgtrack_client/internal/platform/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := applog.New(cfg.LogLevel, cfg.IsProduction)
	slog.SetDefault(logger)
	ctx := applog.IntoContext(context.Background(), logger)

	client := restapi.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, restapi.NewBearerToken(cfg.AuthToken))
	userGateway := restapi.NewUserGateway(client)
	goalGateway := restapi.NewGoalGateway(client)
	transactionGateway := restapi.NewTransactionGateway(client)

	container := services.NewContainer(services.Gateways{
		Identity:      userGateway,
		Users:         userGateway,
		Goals:         goalGateway,
		Transactions:  transactionGateway,
		Dashboard:     transactionGateway,
		Members:       restapi.NewMemberGateway(client),
		Organizations: restapi.NewOrganizationGateway(client),
	})

	info, err := container.Session.Resolve(ctx)
	if err != nil {
		logger.Error("Failed to resolve session", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("signed in as user %d (role %s)\n", info.UserID, info.Role)
	if !info.InOrganization() {
		fmt.Println("user does not belong to an organization yet")
		return
	}

	// Mirror the mounted views: both queries stay subscribed so a mutation
	// issued elsewhere in the process would refresh them.
	goalsQuery := cache.NewQuery(container.Registry, cache.GoalsKey(), func(ctx context.Context) ([]domain.Goal, error) {
		return container.Goals.ListGoals(ctx)
	})
	defer goalsQuery.Close()
	dashboardQuery := cache.NewQuery(container.Registry, cache.DashboardKey(info.OrganizationID), func(ctx context.Context) (*domain.DashboardSummary, error) {
		return container.Transactions.Summary(ctx)
	})
	defer dashboardQuery.Close()

	goals, err := goalsQuery.Get(ctx)
	if err != nil {
		logger.Error("Failed to load goals", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if highlighted, ok := domain.SelectHighlighted(goals); ok {
		fmt.Printf("highlighted goal: %q (%s)\n", highlighted.Title, highlighted.Status)
	} else {
		fmt.Println("no goals registered yet")
	}

	summary, err := dashboardQuery.Get(ctx)
	if err != nil {
		logger.Error("Failed to load dashboard", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("income: %s expenses: %s balance: %s (positive: %t)\n",
		summary.TotalIncome, summary.TotalExpenses, summary.TotalBalance, summary.IsBalancePositive)
}
