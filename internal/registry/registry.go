package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tokentrack/burn-tracker/internal/domain"
)

// Token is one canonical registry entry
type Token struct {
	Symbol   string       `json:"symbol"`
	Name     string       `json:"name"`
	Chain    domain.Chain `json:"chain"`
	Address  string       `json:"address"`
	Decimals int          `json:"decimals"`
	// StartBlock is the contract deployment block, the lower bound for a
	// first-run scan
	StartBlock uint64 `json:"start_block"`
	// BurnEligible marks tokens the burn pipeline tracks; others are listed
	// for metadata only
	BurnEligible bool `json:"burn_eligible"`
}

// Key returns the token's composite identity
func (t *Token) Key() domain.TokenKey {
	return domain.NewTokenKey(t.Chain, t.Address)
}

// TokenRegistry defines lookup operations over the static token registry
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// Resolve looks a token up by symbol (case-insensitive) or contract
	// address. Returns domain.ErrUnknownToken on a miss.
	Resolve(identifier string) (*Token, error)

	// ResolveForChain resolves and additionally checks the chain matches,
	// returning domain.ErrChainMismatch when it does not
	ResolveForChain(chain domain.Chain, identifier string) (*Token, error)

	// BurnEligible returns every token tracked by the burn pipeline
	BurnEligible() []Token

	// Len returns the number of registered tokens
	Len() int
}

// registryData is the on-disk structure of the tokens.json file
type registryData struct {
	Tokens []Token `json:"tokens"`
}

type tokenRegistry struct {
	tokens []Token
	// Lookup maps: lowercased symbol -> index, lowercased address -> index
	bySymbol  map[string]int
	byAddress map[string]int
}

// Load reads the token registry from a JSON file
func Load(filePath string) (TokenRegistry, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var parsed registryData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}

	reg := &tokenRegistry{
		tokens:    parsed.Tokens,
		bySymbol:  make(map[string]int),
		byAddress: make(map[string]int),
	}

	for i, token := range parsed.Tokens {
		if token.Symbol == "" || token.Address == "" {
			return nil, fmt.Errorf("registry entry %d is missing symbol or address", i)
		}
		if !token.Chain.Valid() {
			return nil, fmt.Errorf("registry entry %q has unsupported chain %q", token.Symbol, token.Chain)
		}
		reg.bySymbol[strings.ToLower(token.Symbol)] = i
		reg.byAddress[strings.ToLower(token.Address)] = i
	}

	return reg, nil
}

// Resolve looks a token up by symbol or contract address
func (r *tokenRegistry) Resolve(identifier string) (*Token, error) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return nil, domain.ErrUnknownToken
	}

	if i, ok := r.bySymbol[needle]; ok {
		return &r.tokens[i], nil
	}
	if i, ok := r.byAddress[needle]; ok {
		return &r.tokens[i], nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownToken, identifier)
}

// ResolveForChain resolves and checks the chain matches
func (r *tokenRegistry) ResolveForChain(chain domain.Chain, identifier string) (*Token, error) {
	token, err := r.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	if token.Chain != chain {
		return nil, fmt.Errorf("%w: %s is registered on %s, not %s",
			domain.ErrChainMismatch, token.Symbol, token.Chain, chain)
	}
	return token, nil
}

// BurnEligible returns every token tracked by the burn pipeline
func (r *tokenRegistry) BurnEligible() []Token {
	eligible := make([]Token, 0, len(r.tokens))
	for _, token := range r.tokens {
		if token.BurnEligible {
			eligible = append(eligible, token)
		}
	}
	return eligible
}

// Len returns the number of registered tokens
func (r *tokenRegistry) Len() int {
	return len(r.tokens)
}
