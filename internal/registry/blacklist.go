package registry

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/domain"
)

// BlacklistRegistry tells whether a contract must be hidden from collectibles
type BlacklistRegistry interface {
	// IsBlacklisted checks if a contract address is blacklisted for a given chain
	IsBlacklisted(chain domain.Chain, contractAddress string) bool

	// IsAssetBlacklisted checks the contract of an asset. Assets without a contract are never blacklisted.
	IsAssetBlacklisted(asset domain.Asset) bool
}

// BlacklistData represents the structure of the blacklist file
// Key format: chain label -> list of contract addresses
type BlacklistData map[string][]string

// blacklistRegistry is the internal implementation of BlacklistRegistry
type blacklistRegistry struct {
	// Fast lookup map: "chain:contract" -> true
	contracts map[string]bool
}

// BlacklistRegistryLoader loads a blacklist from a JSON file
type BlacklistRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewBlacklistRegistryLoader creates a loader reading through the given adapters
func NewBlacklistRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *BlacklistRegistryLoader {
	return &BlacklistRegistryLoader{fs: fs, json: json}
}

// Load reads and indexes the blacklist file
func (l *BlacklistRegistryLoader) Load(filePath string) (BlacklistRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var blacklistData BlacklistData
	if err := l.json.Unmarshal(data, &blacklistData); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist JSON: %w", err)
	}

	return NewBlacklistRegistry(blacklistData), nil
}

// NewBlacklistRegistry indexes blacklist data, matching is case-insensitive
func NewBlacklistRegistry(data BlacklistData) BlacklistRegistry {
	bl := &blacklistRegistry{contracts: make(map[string]bool)}
	for chain, addresses := range data {
		for _, addr := range addresses {
			bl.contracts[blacklistKey(domain.Chain(chain), addr)] = true
		}
	}
	return bl
}

func blacklistKey(chain domain.Chain, contractAddress string) string {
	return strings.ToLower(string(chain)) + ":" + strings.ToLower(contractAddress)
}

func (b *blacklistRegistry) IsBlacklisted(chain domain.Chain, contractAddress string) bool {
	if b == nil {
		return false
	}
	return b.contracts[blacklistKey(chain, contractAddress)]
}

func (b *blacklistRegistry) IsAssetBlacklisted(asset domain.Asset) bool {
	if asset.ContractAddress == nil {
		return false
	}
	// Every asset is read from an Ethereum provider
	return b.IsBlacklisted(domain.ChainEthereum, *asset.ContractAddress)
}
