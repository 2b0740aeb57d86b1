package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/registry"
)

const testRegistryJSON = `{
	"tokens": [
		{
			"symbol": "PHT",
			"name": "Phoenix Token",
			"chain": "assetchain",
			"address": "0xAAAA000000000000000000000000000000000001",
			"decimals": 18,
			"start_block": 100,
			"burn_eligible": true
		},
		{
			"symbol": "XEND",
			"name": "Xend Token",
			"chain": "ethereum",
			"address": "0xBBBB000000000000000000000000000000000002",
			"decimals": 18,
			"start_block": 200,
			"burn_eligible": true
		},
		{
			"symbol": "RWA",
			"name": "RWA Token",
			"chain": "assetchain",
			"address": "0xCCCC000000000000000000000000000000000003",
			"decimals": 18,
			"start_block": 300,
			"burn_eligible": false
		}
	]
}`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := registry.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := registry.Load(writeRegistry(t, "{not json"))
	assert.Error(t, err)
}

func TestLoad_UnsupportedChain(t *testing.T) {
	_, err := registry.Load(writeRegistry(t, `{
		"tokens": [{"symbol": "X", "chain": "solana", "address": "0x1", "decimals": 9}]
	}`))
	assert.Error(t, err)
}

func TestResolve_BySymbolCaseInsensitive(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)

	for _, identifier := range []string{"PHT", "pht", "Pht"} {
		token, err := reg.Resolve(identifier)
		require.NoError(t, err, identifier)
		assert.Equal(t, "PHT", token.Symbol)
	}
}

func TestResolve_ByAddressCaseInsensitive(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)

	token, err := reg.Resolve("0xaaaa000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "PHT", token.Symbol)
}

func TestResolve_Unknown(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)

	_, err = reg.Resolve("doge")
	assert.ErrorIs(t, err, domain.ErrUnknownToken)

	_, err = reg.Resolve("  ")
	assert.ErrorIs(t, err, domain.ErrUnknownToken)
}

func TestResolveForChain(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)

	token, err := reg.ResolveForChain(domain.ChainAssetChain, "pht")
	require.NoError(t, err)
	assert.Equal(t, "PHT", token.Symbol)
}

func TestResolveForChain_Mismatch(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)

	// XEND lives on ethereum, not assetchain
	_, err = reg.ResolveForChain(domain.ChainAssetChain, "xend")
	assert.ErrorIs(t, err, domain.ErrChainMismatch)
}

func TestBurnEligible(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, testRegistryJSON))
	require.NoError(t, err)

	eligible := reg.BurnEligible()
	require.Len(t, eligible, 2)
	for _, token := range eligible {
		assert.NotEqual(t, "RWA", token.Symbol)
	}
}

func TestToken_Key(t *testing.T) {
	token := &registry.Token{Chain: domain.ChainAssetChain, Address: "0xAAAA01"}
	assert.Equal(t, domain.TokenKey("assetchain:0xaaaa01"), token.Key())
}
