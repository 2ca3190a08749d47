package mango

import "context"

// Client reads margin-account state from the chain. The health ratio
// computation itself is external; this interface only reports results.
//
//go:generate mockery --name Client
type Client interface {
	// GetHealthRatio returns the current maintenance health ratio for
	// the given margin account, in percent.
	GetHealthRatio(ctx context.Context, accountPk, groupPk string) (AccountHealth, error)

	// ValidateAccount checks that the account and group references
	// resolve to existing on-chain accounts.
	ValidateAccount(ctx context.Context, accountPk, groupPk string) error
}
