package channel

import "math/big"

func bytesToBigInt(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}
