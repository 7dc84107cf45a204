package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

// Random creates a new keypair for test code; it panics on failure.
func Random() *Full {
	kp, err := stellar.Random()
	if err != nil {
		panic(err)
	}

	return kp
}

// RandomAddresses returns n distinct account addresses.
func RandomAddresses(n int) []string {
	addresses := make([]string, n)
	for i := range addresses {
		addresses[i] = Random().Address()
	}

	return addresses
}
