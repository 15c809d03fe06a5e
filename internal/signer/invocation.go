package signer

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/emergency-fund/fund-ledger/internal/types"
)

type Operation string

const (
	OpInitialize Operation = "initialize"
	OpDonate     Operation = "donate"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Invocation is the signed payload of a mutating request. Field order is
// fixed so its JSON encoding is canonical.
type Invocation struct {
	Op           Operation `json:"op"`
	Fund         string    `json:"fund"`
	Signer       string    `json:"signer"`
	Amount       uint64    `json:"amount"`
	Seed         string    `json:"seed"`
	InvocationID string    `json:"invocation_id"`
}

// Digest is the 32-byte message covered by the signature.
func (i Invocation) Digest() ([]byte, error) {
	bz, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return chainhash.HashB(bz), nil
}

// Verify checks a hex encoded BIP-340 signature of the invocation against
// the signer's x-only public key and returns the signer address.
func Verify(inv Invocation, signatureHex string) (types.Address, error) {
	signer, err := types.ParseAddress(inv.Signer)
	if err != nil {
		return types.Address{}, fmt.Errorf("invalid signer: %w", err)
	}

	pubKey, err := schnorr.ParsePubKey(signer.Bytes())
	if err != nil {
		return types.Address{}, fmt.Errorf("signer is not a valid public key: %w", err)
	}

	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	digest, err := inv.Digest()
	if err != nil {
		return types.Address{}, err
	}

	if !sig.Verify(digest, pubKey) {
		return types.Address{}, ErrInvalidSignature
	}
	return signer, nil
}

// Sign produces the hex encoded signature Verify accepts.
func Sign(privKey *btcec.PrivateKey, inv Invocation) (string, error) {
	digest, err := inv.Digest()
	if err != nil {
		return "", err
	}

	sig, err := schnorr.Sign(privKey, digest)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig.Serialize()), nil
}

// AddressOf returns the address identified by the key: its x-only public key.
func AddressOf(privKey *btcec.PrivateKey) types.Address {
	var addr types.Address
	copy(addr[:], schnorr.SerializePubKey(privKey.PubKey()))
	return addr
}
