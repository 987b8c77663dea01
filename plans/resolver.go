package plans

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUnknownUser = errors.New("unknown user")

type UserResolver interface {
	Resolve(handle string) (common.Address, error)
}

// StaticResolver maps handles to addresses. Handles are case-insensitive and may carry a leading @.
type StaticResolver map[string]common.Address

var _ UserResolver = StaticResolver{}

func NewStaticResolver(tables ...map[string]string) (StaticResolver, error) {
	ret := make(StaticResolver)
	for _, table := range tables {
		for handle, hex := range table {
			if !common.IsHexAddress(hex) {
				return nil, fmt.Errorf("user %s: bad address %q", handle, hex)
			}
			ret[normalize(handle)] = common.HexToAddress(hex)
		}
	}
	return ret, nil
}

func (s StaticResolver) Resolve(handle string) (common.Address, error) {
	addr, ok := s[normalize(handle)]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: @%s", ErrUnknownUser, strings.TrimPrefix(handle, "@"))
	}
	return addr, nil
}

func normalize(handle string) string {
	return strings.ToLower(strings.TrimPrefix(handle, "@"))
}
