//
// Encapsulate Stellar's keypair package
//
// Provides the account address handling used by governance: voters and
// citizens are identified by their public address.
//
package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

// Aliases to stellar types
type Full = stellar.Full
type KP = stellar.KP

// Aliases to stellar functions
var Parse = stellar.Parse
var RandomCanFail = stellar.Random

// IsValidAddress checks address is a public account address; secret seeds
// are refused.
func IsValidAddress(address string) bool {
	kp, err := Parse(address)
	if err != nil {
		return false
	}

	_, isFull := kp.(*Full)
	return !isFull
}
