package domain

import (
	"fmt"
	"strings"
	"time"
)

// Chain identifies a blockchain network, e.g. "assetchain" or "ethereum"
type Chain string

const (
	ChainAssetChain Chain = "assetchain"
	ChainEthereum   Chain = "ethereum"
)

// Valid reports whether the chain is one this service knows how to scan
func (c Chain) Valid() bool {
	switch c {
	case ChainAssetChain, ChainEthereum:
		return true
	}
	return false
}

// TokenKey is the composite identity "{chain}:{addressLowercased}" used for
// active-token membership and cache bookkeeping
type TokenKey string

// NewTokenKey builds a TokenKey from a chain and contract address
func NewTokenKey(chain Chain, address string) TokenKey {
	return TokenKey(fmt.Sprintf("%s:%s", chain, strings.ToLower(address)))
}

// Parse splits a TokenKey back into chain and address.
// Returns ok=false when the key is malformed.
func (k TokenKey) Parse() (Chain, string, bool) {
	parts := strings.SplitN(string(k), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return Chain(parts[0]), parts[1], true
}

// Window is a trailing duration over which burn amounts are summed
type Window struct {
	Name     string
	Duration time.Duration
}

// Windows lists every reporting window from narrowest to widest.
// Order matters: summary fields are filled positionally and the
// monotonicity invariant (each sum >= the previous) follows from it.
var Windows = []Window{
	{Name: "5min", Duration: 5 * time.Minute},
	{Name: "15min", Duration: 15 * time.Minute},
	{Name: "30min", Duration: 30 * time.Minute},
	{Name: "1h", Duration: time.Hour},
	{Name: "3h", Duration: 3 * time.Hour},
	{Name: "6h", Duration: 6 * time.Hour},
	{Name: "12h", Duration: 12 * time.Hour},
	{Name: "24h", Duration: 24 * time.Hour},
}

// IntervalClass groups tokens by how often their burn data is recomputed.
// Narrow windows go stale faster than wide ones, so the refresh cadence is
// tiered instead of uniform.
type IntervalClass string

const (
	IntervalShort  IntervalClass = "short"  // 5/15 min windows
	IntervalMedium IntervalClass = "medium" // 30 min / 1h windows
	IntervalLong   IntervalClass = "long"   // 3h and wider
)

// BurnEvent is one transfer directed at a burn address
type BurnEvent struct {
	TokenAddress string    `json:"token_address"`
	BlockNumber  uint64    `json:"block_number"`
	Timestamp    time.Time `json:"timestamp"`
	// Amount is the raw base-unit amount as a decimal string, undivided by
	// the token's decimals
	Amount   string `json:"amount"`
	TxHash   string `json:"tx_hash"`
	LogIndex uint   `json:"log_index"`
}

// BurnSummary is the aggregate burn data for one token
type BurnSummary struct {
	TokenName    string `json:"token_name"`
	TokenAddress string `json:"token_address"`

	Burn5Min  float64 `json:"burn_5min"`
	Burn15Min float64 `json:"burn_15min"`
	Burn30Min float64 `json:"burn_30min"`
	Burn1H    float64 `json:"burn_1h"`
	Burn3H    float64 `json:"burn_3h"`
	Burn6H    float64 `json:"burn_6h"`
	Burn12H   float64 `json:"burn_12h"`
	Burn24H   float64 `json:"burn_24h"`

	LastUpdated        time.Time     `json:"last_updated"`
	LastProcessedBlock uint64        `json:"last_processed_block"`
	ComputationTime    time.Duration `json:"computation_time"`
}

// WindowValues returns the eight sums in widening order
func (s *BurnSummary) WindowValues() []float64 {
	return []float64{
		s.Burn5Min, s.Burn15Min, s.Burn30Min, s.Burn1H,
		s.Burn3H, s.Burn6H, s.Burn12H, s.Burn24H,
	}
}

// SetWindowValues fills the eight sums from a slice in widening order
func (s *BurnSummary) SetWindowValues(values []float64) {
	fields := []*float64{
		&s.Burn5Min, &s.Burn15Min, &s.Burn30Min, &s.Burn1H,
		&s.Burn3H, &s.Burn6H, &s.Burn12H, &s.Burn24H,
	}
	for i, f := range fields {
		if i < len(values) {
			*f = values[i]
		}
	}
}

// CacheEntry is the persisted copy of a BurnSummary plus scheduling metadata
type CacheEntry struct {
	Summary BurnSummary `json:"summary"`
	// NextUpdate is the application-level staleness signal: reads at or past
	// this instant trigger a background recomputation while still serving
	// the stored summary
	NextUpdate time.Time `json:"next_update"`
	// FromCache is false only on placeholder entries synthesized when no
	// cached data exists yet
	FromCache bool `json:"from_cache"`
}

// Stale reports whether the entry should trigger a background refresh
func (e *CacheEntry) Stale(now time.Time) bool {
	if e == nil {
		return true
	}
	return !now.Before(e.NextUpdate)
}

// ActiveToken is one member of the active-token set
type ActiveToken struct {
	Chain    Chain     `json:"chain"`
	Address  string    `json:"address"`
	LastSeen time.Time `json:"last_seen"`
}

// SweepFailure records one token's failure inside a sweep
type SweepFailure struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// SweepReport is the structured result of one Refresh Scheduler run
type SweepReport struct {
	RunID     string         `json:"run_id"`
	Kind      string         `json:"kind"` // "full" or "active"
	Processed int            `json:"processed"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Failures  []SweepFailure `json:"failures,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}

// JobState is the lifecycle state of one background computation run
type JobState string

const (
	JobPending   JobState = "pending"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)
