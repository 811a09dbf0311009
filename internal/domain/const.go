package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://balance.mypinata.cloud/ipfs"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// KEY_SEPARATOR joins the token id and the contract address of a collectible key
	KEY_SEPARATOR = ":::"
)
