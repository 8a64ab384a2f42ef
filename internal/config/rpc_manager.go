package config

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"bytescope/internal"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// RPCManager pools ethclient connections for one chain and fails over to the
// next healthy endpoint when the current one stops answering.
type RPCManager struct {
	chainName         string
	urls              []string
	clients           []*ethclient.Client
	current           int
	mutex             sync.RWMutex
	timeout           time.Duration
	healthCacheWindow time.Duration
	lastHealthyAt     []time.Time
}

func dialEthClient(rawURL string, timeout time.Duration, proxy string) (*ethclient.Client, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("empty rpc url")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		httpClient, err := internal.CreateProxyHTTPClient(proxy, timeout)
		if err != nil {
			return nil, err
		}
		rpcClient, err := rpc.DialHTTPWithClient(rawURL, httpClient)
		if err != nil {
			return nil, err
		}
		return ethclient.NewClient(rpcClient), nil
	default:
		return ethclient.Dial(rawURL)
	}
}

func NewRPCManager(chainName string, urls []string, timeout time.Duration, proxy string) (*RPCManager, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("at least one RPC URL is required")
	}

	manager := &RPCManager{
		chainName:         chainName,
		urls:              urls,
		timeout:           timeout,
		clients:           make([]*ethclient.Client, len(urls)),
		healthCacheWindow: 5 * time.Second,
		lastHealthyAt:     make([]time.Time, len(urls)),
	}

	for i, u := range urls {
		client, err := dialEthClient(u, timeout, proxy)
		if err != nil {
			fmt.Printf("⚠️  Failed to connect to RPC [%s]: %v\n", u, err)
			continue
		}
		manager.clients[i] = client
	}

	manager.current = rand.Intn(len(manager.clients))
	return manager, nil
}

// GetRPCManager builds a manager from the chain's configured endpoints.
func GetRPCManager(chainName, proxy string) (*RPCManager, error) {
	chain, err := GetChainConfig(chainName)
	if err != nil {
		return nil, err
	}
	return NewRPCManager(chainName, chain.RPCURLs, 30*time.Second, proxy)
}

// GetClient returns a healthy client, probing the current endpoint at most
// once per health-cache window and rotating on failure.
func (r *RPCManager) GetClient() (*ethclient.Client, error) {
	r.mutex.RLock()
	current := r.current
	timeout := r.timeout
	cacheWindow := r.healthCacheWindow
	var client *ethclient.Client
	var lastHealthy time.Time
	if current >= 0 && current < len(r.clients) {
		client = r.clients[current]
		lastHealthy = r.lastHealthyAt[current]
	}
	r.mutex.RUnlock()

	if client != nil {
		if !lastHealthy.IsZero() && time.Since(lastHealthy) < cacheWindow {
			return client, nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := client.BlockNumber(ctx); err == nil {
			r.mutex.Lock()
			if current >= 0 && current < len(r.lastHealthyAt) {
				r.lastHealthyAt[current] = time.Now()
			}
			r.mutex.Unlock()
			return client, nil
		}
	}

	return r.switchToNextClient()
}

func (r *RPCManager) switchToNextClient() (*ethclient.Client, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	start := r.current
	for i := 1; i <= len(r.clients); i++ {
		next := (start + i) % len(r.clients)
		client := r.clients[next]
		if client == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		_, err := client.BlockNumber(ctx)
		cancel()
		if err != nil {
			continue
		}

		r.current = next
		r.lastHealthyAt[next] = time.Now()
		return client, nil
	}

	return nil, fmt.Errorf("no healthy RPC endpoint available for chain %s", r.chainName)
}

// GetCurrentURL reports the endpoint currently in use, for display.
func (r *RPCManager) GetCurrentURL() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if r.current >= 0 && r.current < len(r.urls) {
		return r.urls[r.current]
	}
	return ""
}

func (r *RPCManager) Close() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, client := range r.clients {
		if client != nil {
			client.Close()
		}
	}
}
