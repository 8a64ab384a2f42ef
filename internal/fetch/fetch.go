package fetch

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"bytescope/internal/config"
	"bytescope/internal/logger"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// ErrNoContract marks an address that answered eth_getCode with empty code.
// Distinct from a transport failure: there is simply no contract there.
var ErrNoContract = errors.New("no contract code at address")

// CodeReader is the minimal RPC surface the fetcher needs; *ethclient.Client
// satisfies it, tests supply fakes.
type CodeReader interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// Result is the outcome of one address fetch. Exactly one of Bytecode or Err
// is meaningful.
type Result struct {
	Address  string
	Bytecode string
	Err      error
}

// Fetcher retrieves contract bytecode over the chain's RPC endpoints with
// bounded concurrency. Failures never abort the batch; each address fails or
// succeeds on its own.
type Fetcher struct {
	rpc         *config.RPCManager
	concurrency int
}

func NewFetcher(rpc *config.RPCManager, concurrency int) *Fetcher {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Fetcher{rpc: rpc, concurrency: concurrency}
}

// FetchCode retrieves one contract's bytecode at the latest block. Empty code
// is surfaced as ErrNoContract, never as a clean empty result.
func FetchCode(ctx context.Context, client CodeReader, address string) (string, error) {
	code, err := client.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return "", fmt.Errorf("eth_getCode %s: %w", address, err)
	}
	if len(code) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoContract, address)
	}
	return fmt.Sprintf("0x%x", code), nil
}

// FetchAll fans eth_getCode out across the addresses and collects per-address
// results in input order. The group error is always nil; failures live in the
// individual results so callers can degrade instead of aborting.
func (f *Fetcher) FetchAll(ctx context.Context, addresses []string) []Result {
	results := make([]Result, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, addr := range addresses {
		g.Go(func() error {
			results[i] = Result{Address: addr}
			client, err := f.rpc.GetClient()
			if err != nil {
				results[i].Err = fmt.Errorf("rpc client: %w", err)
				return nil
			}
			code, err := FetchCode(gctx, client, addr)
			if err != nil {
				logger.Debug("fetch failed for %s: %v", addr, err)
				results[i].Err = err
				return nil
			}
			results[i].Bytecode = code
			return nil
		})
	}
	g.Wait()

	return results
}
