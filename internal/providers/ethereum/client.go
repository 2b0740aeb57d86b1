package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
)

var (
	// transferEventSignature is the topic hash for ERC-20/721 Transfer events
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	// erc20ABI covers the read-only calls the scanner needs
	erc20ABI = `[
		{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"payable":false,"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}
	]`
)

// Client exposes the chain operations the burn pipeline needs
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=Client=MockChainClient
type Client interface {
	// HeadBlock returns the current chain head block number
	HeadBlock(ctx context.Context) (uint64, error)

	// BlockTime returns the timestamp of a block
	BlockTime(ctx context.Context, blockNumber uint64) (time.Time, error)

	// ScanBurnTransfers collects transfers to any burn address for the
	// contract inside [fromBlock, toBlock], handling provider result limits
	// by halving the request window
	ScanBurnTransfers(ctx context.Context, contractAddress string, fromBlock, toBlock uint64) ([]domain.BurnEvent, error)

	// TokenDecimals fetches the decimals() value of an ERC-20 contract
	TokenDecimals(ctx context.Context, contractAddress string) (uint8, error)

	// TotalSupply fetches the totalSupply() value of an ERC-20 contract
	TotalSupply(ctx context.Context, contractAddress string) (*big.Int, error)

	// BalanceOf fetches the balanceOf(holder) value of an ERC-20 contract
	BalanceOf(ctx context.Context, contractAddress, holderAddress string) (*big.Int, error)

	// Close closes the connection
	Close()
}

type client struct {
	chainID     domain.Chain
	eth         adapter.EthClient
	clock       adapter.Clock
	chunkSize   uint64
	callTimeout time.Duration
	parsedABI   abi.ABI
}

// Config holds chain client configuration
type Config struct {
	ChainID     domain.Chain
	ChunkSize   uint64
	CallTimeout time.Duration
}

// NewClient creates a chain client over an adapter.EthClient
func NewClient(cfg Config, eth adapter.EthClient, clock adapter.Clock) (Client, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC20 ABI: %w", err)
	}

	chunkSize := cfg.ChunkSize
	if chunkSize == 0 {
		chunkSize = 5000
	}
	callTimeout := cfg.CallTimeout
	if callTimeout == 0 {
		callTimeout = 15 * time.Second
	}

	return &client{
		chainID:     cfg.ChainID,
		eth:         eth,
		clock:       clock,
		chunkSize:   chunkSize,
		callTimeout: callTimeout,
		parsedABI:   parsed,
	}, nil
}

// HeadBlock returns the current chain head block number
func (c *client) HeadBlock(ctx context.Context) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	header, err := c.eth.HeaderByNumber(callCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get head block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// BlockTime returns the timestamp of a block
func (c *client) BlockTime(ctx context.Context, blockNumber uint64) (time.Time, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	block, err := c.eth.BlockByNumber(callCtx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		if IsRateLimitError(err) {
			return time.Time{}, fmt.Errorf("%w: %v", domain.ErrUpstreamRateLimited, err)
		}
		return time.Time{}, fmt.Errorf("failed to get block %d: %w", blockNumber, err)
	}
	return c.clock.Unix(int64(block.Time()), 0), nil //nolint:gosec,G115 // block.Time() returns a uint64 from geth which is safe to cast
}

// ScanBurnTransfers collects transfers to any burn address for the contract
// inside [fromBlock, toBlock]
func (c *client) ScanBurnTransfers(ctx context.Context, contractAddress string, fromBlock, toBlock uint64) ([]domain.BurnEvent, error) {
	if fromBlock > toBlock {
		return nil, nil
	}

	burnTopics := make([]common.Hash, 0, len(domain.BurnAddresses))
	for _, addr := range domain.BurnAddresses {
		burnTopics = append(burnTopics, common.BytesToHash(common.HexToAddress(addr).Bytes()))
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{common.HexToAddress(contractAddress)},
		Topics: [][]common.Hash{
			{transferEventSignature},
			nil,        // any from address
			burnTopics, // to one of the burn sinks
		},
	}

	logs, err := c.filterLogsChunked(ctx, query, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}

	// Memoize block timestamps: many burns land in the same block and each
	// BlockByNumber call is a full RPC round trip
	blockTimes := make(map[uint64]time.Time)

	events := make([]domain.BurnEvent, 0, len(logs))
	for _, vLog := range logs {
		event, err := c.parseBurnTransfer(ctx, vLog, blockTimes)
		if err != nil {
			logger.Warn("Failed to parse transfer log",
				zap.String("tx_hash", vLog.TxHash.Hex()),
				zap.Error(err))
			continue
		}
		if event != nil {
			events = append(events, *event)
		}
	}

	return events, nil
}

// filterLogsChunked walks [fromBlock, toBlock] in chunkSize windows, halving
// the window whenever the provider rejects a request for returning too many
// results
func (c *client) filterLogsChunked(ctx context.Context, query ethereum.FilterQuery, fromBlock, toBlock uint64) ([]types.Log, error) {
	var allLogs []types.Log
	currentStep := c.chunkSize
	currentFrom := fromBlock

	for currentFrom <= toBlock {
		currentTo := currentFrom + currentStep - 1
		if currentTo > toBlock {
			currentTo = toBlock
		}

		chunkQuery := query
		chunkQuery.FromBlock = new(big.Int).SetUint64(currentFrom)
		chunkQuery.ToBlock = new(big.Int).SetUint64(currentTo)

		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		logs, err := c.eth.FilterLogs(callCtx, chunkQuery)
		cancel()

		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom = currentTo + 1
			// Recover the full step after a successful chunk
			currentStep = c.chunkSize
			continue
		}

		if IsRateLimitError(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamRateLimited, err)
		}

		if !isTooManyResultsError(err) {
			return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom, currentTo, err)
		}

		if currentStep <= 1 {
			return nil, fmt.Errorf("provider rejected single-block query at %d: %w", currentFrom, err)
		}

		currentStep = currentStep / 2
		logger.Warn("Too many results, reducing step size",
			zap.Uint64("old_step", currentStep*2),
			zap.Uint64("new_step", currentStep),
			zap.Uint64("from_block", currentFrom))
	}

	return allLogs, nil
}

// parseBurnTransfer converts one Transfer log into a BurnEvent.
// Returns nil for logs that are not plain ERC-20 transfers.
func (c *client) parseBurnTransfer(ctx context.Context, vLog types.Log, blockTimes map[uint64]time.Time) (*domain.BurnEvent, error) {
	// ERC-20 Transfer has 3 topics (signature, from, to) with the value in
	// data; 4 topics means ERC-721, which has no burnable amount here
	if len(vLog.Topics) != 3 {
		return nil, nil
	}
	if len(vLog.Data) < 32 {
		return nil, fmt.Errorf("transfer event has insufficient data")
	}

	ts, ok := blockTimes[vLog.BlockNumber]
	if !ok {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		block, err := c.eth.BlockByNumber(callCtx, new(big.Int).SetUint64(vLog.BlockNumber))
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to get block %d: %w", vLog.BlockNumber, err)
		}
		ts = c.clock.Unix(int64(block.Time()), 0) //nolint:gosec,G115 // block.Time() returns a uint64 from geth which is safe to cast
		blockTimes[vLog.BlockNumber] = ts
	}

	amount := new(big.Int).SetBytes(vLog.Data[0:32])

	return &domain.BurnEvent{
		TokenAddress: strings.ToLower(vLog.Address.Hex()),
		BlockNumber:  vLog.BlockNumber,
		Timestamp:    ts,
		Amount:       amount.String(),
		TxHash:       vLog.TxHash.Hex(),
		LogIndex:     vLog.Index,
	}, nil
}

// TokenDecimals fetches the decimals() value of an ERC-20 contract
func (c *client) TokenDecimals(ctx context.Context, contractAddress string) (uint8, error) {
	result, err := c.call(ctx, contractAddress, "decimals")
	if err != nil {
		return 0, err
	}

	var decimals uint8
	if err := c.parsedABI.UnpackIntoInterface(&decimals, "decimals", result); err != nil {
		return 0, fmt.Errorf("failed to unpack decimals: %w", err)
	}
	return decimals, nil
}

// TotalSupply fetches the totalSupply() value of an ERC-20 contract
func (c *client) TotalSupply(ctx context.Context, contractAddress string) (*big.Int, error) {
	result, err := c.call(ctx, contractAddress, "totalSupply")
	if err != nil {
		return nil, err
	}

	var supply *big.Int
	if err := c.parsedABI.UnpackIntoInterface(&supply, "totalSupply", result); err != nil {
		return nil, fmt.Errorf("failed to unpack totalSupply: %w", err)
	}
	return supply, nil
}

// BalanceOf fetches the balanceOf(holder) value of an ERC-20 contract
func (c *client) BalanceOf(ctx context.Context, contractAddress, holderAddress string) (*big.Int, error) {
	result, err := c.call(ctx, contractAddress, "balanceOf", common.HexToAddress(holderAddress))
	if err != nil {
		return nil, err
	}

	var balance *big.Int
	if err := c.parsedABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack balanceOf: %w", err)
	}
	return balance, nil
}

// call packs and executes a read-only contract call
func (c *client) call(ctx context.Context, contractAddress, method string, args ...interface{}) ([]byte, error) {
	data, err := c.parsedABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.eth.CallContract(callCtx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		if IsRateLimitError(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamRateLimited, err)
		}
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	return result, nil
}

// Close closes the connection
func (c *client) Close() {
	c.eth.Close()
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// IsRateLimitError checks if the error indicates provider throttling
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "request limit reached")
}
