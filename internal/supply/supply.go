package supply

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/providers/ethereum"
	"github.com/tokentrack/burn-tracker/internal/ratelimit"
	"github.com/tokentrack/burn-tracker/internal/registry"
)

const rpcProvider = "rpc"

// Breakdown is the circulating supply calculation for one token
type Breakdown struct {
	TokenName         string  `json:"token_name"`
	TokenAddress      string  `json:"token_address"`
	TotalSupply       float64 `json:"total_supply"`
	BurnedBalance     float64 `json:"burned_balance"`
	LockedBalance     float64 `json:"locked_balance"`
	CirculatingSupply float64 `json:"circulating_supply"`
}

// Calculator computes circulating supply from on-chain balances
//
//go:generate mockgen -source=supply.go -destination=../mocks/supply.go -package=mocks -mock_names=Calculator=MockSupplyCalculator
type Calculator interface {
	// Circulating computes totalSupply minus burn-address and locked-address
	// balances, decimals-adjusted
	Circulating(ctx context.Context, token *registry.Token) (*Breakdown, error)
}

type calculator struct {
	chain   ethereum.Client
	limiter ratelimit.Proxy
	// lockedAddresses hold non-circulating supply (treasury, vesting)
	lockedAddresses []string
}

// NewCalculator creates a circulating supply calculator
func NewCalculator(chain ethereum.Client, limiter ratelimit.Proxy, lockedAddresses []string) Calculator {
	return &calculator{
		chain:           chain,
		limiter:         limiter,
		lockedAddresses: lockedAddresses,
	}
}

// Circulating computes the circulating supply breakdown for a token
func (c *calculator) Circulating(ctx context.Context, token *registry.Token) (*Breakdown, error) {
	total, err := ratelimit.Request(ctx, c.limiter, rpcProvider, func(ctx context.Context) (*big.Int, error) {
		return c.chain.TotalSupply(ctx, token.Address)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get total supply: %w", err)
	}

	burned, err := c.sumBalances(ctx, token.Address, domain.BurnAddresses)
	if err != nil {
		return nil, fmt.Errorf("failed to sum burn balances: %w", err)
	}

	locked, err := c.sumBalances(ctx, token.Address, c.lockedAddresses)
	if err != nil {
		return nil, fmt.Errorf("failed to sum locked balances: %w", err)
	}

	circulating := new(big.Int).Sub(total, burned)
	circulating.Sub(circulating, locked)
	if circulating.Sign() < 0 {
		circulating.SetInt64(0)
	}

	divisor := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(token.Decimals)), nil))

	return &Breakdown{
		TokenName:         token.Symbol,
		TokenAddress:      strings.ToLower(token.Address),
		TotalSupply:       toFloat(total, divisor),
		BurnedBalance:     toFloat(burned, divisor),
		LockedBalance:     toFloat(locked, divisor),
		CirculatingSupply: toFloat(circulating, divisor),
	}, nil
}

// sumBalances sums balanceOf over a set of holder addresses
func (c *calculator) sumBalances(ctx context.Context, contractAddress string, holders []string) (*big.Int, error) {
	sum := new(big.Int)
	for _, holder := range holders {
		balance, err := ratelimit.Request(ctx, c.limiter, rpcProvider, func(ctx context.Context) (*big.Int, error) {
			return c.chain.BalanceOf(ctx, contractAddress, holder)
		})
		if err != nil {
			return nil, fmt.Errorf("balanceOf %s: %w", holder, err)
		}
		sum.Add(sum, balance)
	}
	return sum, nil
}

func toFloat(value *big.Int, divisor *big.Float) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(value), divisor).Float64()
	return f
}
