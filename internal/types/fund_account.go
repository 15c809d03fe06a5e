package types

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	DiscriminatorLength = 8
	// FundAccountSize is the serialized size of a fund account: discriminator,
	// authority and the total raised counter.
	FundAccountSize = DiscriminatorLength + AddressLength + 8

	fundAccountName = "EmergencyFund"
)

var fundAccountDiscriminator = accountDiscriminator(fundAccountName)

func accountDiscriminator(name string) []byte {
	return chainhash.HashB([]byte("account:" + name))[:DiscriminatorLength]
}

// FundAccount is the fixed-size account layout of a fund record. There is no
// version field.
type FundAccount struct {
	Authority   Address
	TotalRaised uint64
}

func (f FundAccount) MarshalBinary() ([]byte, error) {
	buf := make([]byte, FundAccountSize)
	copy(buf, fundAccountDiscriminator)
	copy(buf[DiscriminatorLength:], f.Authority[:])
	binary.LittleEndian.PutUint64(buf[DiscriminatorLength+AddressLength:], f.TotalRaised)
	return buf, nil
}

func (f *FundAccount) UnmarshalBinary(data []byte) error {
	if len(data) != FundAccountSize {
		return fmt.Errorf("invalid fund account size: expected %d bytes, got %d", FundAccountSize, len(data))
	}
	if !bytes.Equal(data[:DiscriminatorLength], fundAccountDiscriminator) {
		return fmt.Errorf("account discriminator mismatch")
	}
	copy(f.Authority[:], data[DiscriminatorLength:DiscriminatorLength+AddressLength])
	f.TotalRaised = binary.LittleEndian.Uint64(data[DiscriminatorLength+AddressLength:])
	return nil
}

// RentExemptMinimum returns the deposit needed to keep an account of dataLen
// bytes alive indefinitely.
func RentExemptMinimum(dataLen uint64) uint64 {
	const (
		accountStorageOverhead = 128
		unitsPerByteYear       = 3480
		exemptionYears         = 2
	)
	return (accountStorageOverhead + dataLen) * unitsPerByteYear * exemptionYears
}
