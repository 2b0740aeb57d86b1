package domain

import "time"

const (
	// Burn sink addresses. Transfers to any of these permanently remove
	// tokens from circulation.
	ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	DEAD_ADDRESS = "0x000000000000000000000000000000000000dead"

	// ACTIVE_WINDOW is how recently a token must have been viewed to count
	// as active; the tracker set carries the same TTL as a backstop
	ACTIVE_WINDOW = 5 * time.Minute
)

// BurnAddresses lists every recognized burn sink
var BurnAddresses = []string{ZERO_ADDRESS, DEAD_ADDRESS}
