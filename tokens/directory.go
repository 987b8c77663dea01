package tokens

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sneldao/snel-sub004/values"
)

// Directory maps token symbols to contract addresses. Symbols are case-insensitive.
type Directory struct {
	bySymbol map[string]values.Address
}

// Builtin lists well-known tokens on Base.
var Builtin = map[string]string{
	"ETH":   values.NativeToken.String(),
	"WETH":  "0x4200000000000000000000000000000000000006",
	"AERO":  "0x940181a94A35A4569E4529A3CDfB74e38FD98631",
	"USDC":  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	"DAI":   "0x50c5725949A6F0c72E6C4a641F24049A917DB0Cb",
	"DEGEN": "0x4ed4E862860beD51a9570b96d89aF5E1B0Efefed",
	"CBBTC": "0xcbB7C0000aB88B473b1f5aFd9ef808440eed33Bf",
}

// NewDirectory builds a directory; later tables override earlier ones.
func NewDirectory(tables ...map[string]string) (Directory, error) {
	ret := Directory{
		bySymbol: make(map[string]values.Address),
	}
	for _, table := range tables {
		for symbol, hex := range table {
			if !common.IsHexAddress(hex) {
				return Directory{}, fmt.Errorf("token %s: malformed address %q", symbol, hex)
			}
			ret.bySymbol[normalize(symbol)] = values.Address(common.HexToAddress(hex))
		}
	}
	return ret, nil
}

func (d Directory) Lookup(symbol string) (values.Address, bool) {
	addr, ok := d.bySymbol[normalize(symbol)]
	return addr, ok
}

func (d Directory) Symbols() []string {
	return slices.Sorted(maps.Keys(d.bySymbol))
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
