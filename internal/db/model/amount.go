package model

import (
	"fmt"
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Amount is an unsigned 64-bit quantity. It is stored as Decimal128 because
// BSON integers are signed and cannot hold the upper half of the range.
type Amount uint64

func (a Amount) Uint64() uint64 {
	return uint64(a)
}

func (a Amount) Decimal128() primitive.Decimal128 {
	d, _ := primitive.ParseDecimal128FromBigInt(new(big.Int).SetUint64(uint64(a)), 0)
	return d
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.Decimal128())
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Decimal128:
		parsed, err := amountFromDecimal128(raw.Decimal128())
		if err != nil {
			return err
		}
		*a = parsed
	case bsontype.Int64:
		v := raw.Int64()
		if v < 0 {
			return fmt.Errorf("negative amount %d", v)
		}
		*a = Amount(v)
	case bsontype.Int32:
		v := raw.Int32()
		if v < 0 {
			return fmt.Errorf("negative amount %d", v)
		}
		*a = Amount(v)
	default:
		return fmt.Errorf("cannot decode %s into an amount", t)
	}
	return nil
}

func amountFromDecimal128(d primitive.Decimal128) (Amount, error) {
	bi, exp, err := d.BigInt()
	if err != nil {
		return 0, fmt.Errorf("invalid decimal amount %s: %w", d, err)
	}

	ten := big.NewInt(10)
	for ; exp > 0; exp-- {
		bi.Mul(bi, ten)
	}
	for ; exp < 0; exp++ {
		var rem big.Int
		bi.QuoRem(bi, ten, &rem)
		if rem.Sign() != 0 {
			return 0, fmt.Errorf("amount %s is not an integer", d)
		}
	}

	if !bi.IsUint64() {
		return 0, fmt.Errorf("amount %s out of range", d)
	}
	return Amount(bi.Uint64()), nil
}
