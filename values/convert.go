package values

import (
	"github.com/ethereum/go-ethereum/common"
)

// NativeToken is the sentinel address denominating the chain's native asset.
var NativeToken = Address(common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"))

const WeiPerEther = 1e18

func NewTokenAmount(amount Float, token Address) TokenAmount {
	return TokenAmount{
		Amount: amount,
		Token:  token,
	}
}

// EthToWei converts an ether amount into a native TokenAmount counted in wei.
func EthToWei(eth Float) TokenAmount {
	return NewTokenAmount(eth*WeiPerEther, NativeToken)
}

// Scale returns the same token with the amount multiplied by fraction.
func (t TokenAmount) Scale(fraction Float) TokenAmount {
	return NewTokenAmount(t.Amount*fraction, t.Token)
}

func (t TokenAmount) Zero() TokenAmount {
	return NewTokenAmount(0, t.Token)
}
