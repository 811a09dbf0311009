package domain

import "errors"

var (
	// ErrNoAPIKey is returned when a provider that requires authentication is configured without a key
	ErrNoAPIKey = errors.New("api key is required")

	// ErrInvalidWallet is returned when a wallet address is not a valid hex address
	ErrInvalidWallet = errors.New("invalid wallet address")

	// ErrAssetNotFound is returned when a provider has no record for a contract/token pair
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUnsupportedProvider is returned when a caller asks for a provider that is not wired
	ErrUnsupportedProvider = errors.New("unsupported provider")
)
