package types

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	AddressLength = 32
	// MaxSeedLength bounds the seed used for fund address derivation.
	MaxSeedLength = 32
)

// Address identifies both signers (x-only public keys) and value holding
// accounts such as funds. It is rendered as base58.
type Address [AddressLength]byte

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func ParseAddress(s string) (Address, error) {
	var addr Address
	if s == "" {
		return addr, fmt.Errorf("empty address")
	}
	decoded := base58.Decode(s)
	if len(decoded) != AddressLength {
		return addr, fmt.Errorf("invalid address %q: expected %d bytes, got %d", s, AddressLength, len(decoded))
	}
	copy(addr[:], decoded)
	return addr, nil
}

func AddressFromBytes(bz []byte) (Address, error) {
	var addr Address
	if len(bz) != AddressLength {
		return addr, fmt.Errorf("invalid address length: expected %d bytes, got %d", AddressLength, len(bz))
	}
	copy(addr[:], bz)
	return addr, nil
}

// DeriveFundAddress returns the address of the fund slot owned by authority
// under the given seed: sha256(authority || seed || programID).
func DeriveFundAddress(authority Address, seed string, programID Address) (Address, error) {
	if len(seed) > MaxSeedLength {
		return Address{}, fmt.Errorf("seed exceeds %d bytes", MaxSeedLength)
	}

	buf := make([]byte, 0, AddressLength*2+len(seed))
	buf = append(buf, authority[:]...)
	buf = append(buf, seed...)
	buf = append(buf, programID[:]...)

	return AddressFromBytes(chainhash.HashB(buf))
}
