package ops

import (
	"strconv"

	"github.com/sneldao/snel-sub004/tokens"
	"github.com/sneldao/snel-sub004/values"
)

const (
	OpGetTokenAddress    = "GET_TOKEN_ADDRESS"
	OpConvertEthToWei    = "CONVERT_ETH_TO_WEI"
	OpExchangeFunds      = "EXCHANGE_FUNDS"
	OpTransferFunds      = "TRANSFER_FUNDS"
	OpMaybeTransferFunds = "MAYBE_TRANSFER_FUNDS"
	OpGetPercentage      = "GET_PERCENTAGE"
)

// Domain returns the token operators. Transfers and exchanges only record effects.
func Domain(directory tokens.Directory) []*Operator {
	return []*Operator{
		{
			Name:    OpGetTokenAddress,
			Doc:     "Look up the contract address of a token symbol such as \"AERO\" or \"USDC\".",
			Inputs:  []Input{{"symbol", values.OnlyString}},
			Outputs: []values.Kind{values.KindAddress},
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				symbol := string(operands[0].(values.String))
				addr, ok := directory.Lookup(symbol)
				if !ok {
					return nil, &ValueError{
						Operator: OpGetTokenAddress,
						Reason:   "unknown token symbol " + strconv.Quote(symbol),
					}
				}
				return []values.Value{addr}, nil
			},
		},
		{
			Name:    OpConvertEthToWei,
			Doc:     "Turn an ETH amount (Float) into a native TokenAmount counted in wei.",
			Inputs:  []Input{{"eth", values.OnlyFloat}},
			Outputs: []values.Kind{values.KindTokenAmount},
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				eth := operands[0].(values.Float)
				if err := checkAmount(OpConvertEthToWei, eth); err != nil {
					return nil, err
				}
				wei := values.EthToWei(eth)
				if err := checkAmount(OpConvertEthToWei, wei.Amount); err != nil {
					return nil, err
				}
				return []values.Value{wei}, nil
			},
		},
		{
			Name: OpExchangeFunds,
			Doc:  "Swap a TokenAmount into the token at the given address. Pushes the received TokenAmount.",
			Inputs: []Input{
				{"amount", values.OnlyAmount},
				{"token", values.OnlyAddress},
			},
			Outputs: []values.Kind{values.KindTokenAmount},
			Apply: func(env Env, operands []values.Value) ([]values.Value, error) {
				from := operands[0].(values.TokenAmount)
				to := operands[1].(values.Address)
				if err := checkAmount(OpExchangeFunds, from.Amount); err != nil {
					return nil, err
				}
				if from.Token == to {
					return nil, &ValueError{
						Operator: OpExchangeFunds,
						Reason:   "source and target token are the same",
					}
				}
				out := Quote(from, to)
				env.Record(Exchange{
					From: from,
					To:   to,
					Out:  out,
				})
				return []values.Value{out}, nil
			},
		},
		{
			Name: OpTransferFunds,
			Doc:  "Send a TokenAmount to an address or @user. Pushes what is left of the amount, which is zero.",
			Inputs: []Input{
				{"amount", values.OnlyAmount},
				{"recipient", values.Destination},
			},
			Outputs: []values.Kind{values.KindTokenAmount},
			Apply: func(env Env, operands []values.Value) ([]values.Value, error) {
				amount := operands[0].(values.TokenAmount)
				if err := checkAmount(OpTransferFunds, amount.Amount); err != nil {
					return nil, err
				}
				env.Record(Transfer{
					Amount: amount,
					To:     operands[1],
				})
				return []values.Value{amount.Zero()}, nil
			},
		},
		{
			Name: OpMaybeTransferFunds,
			Doc: "Pop a Boolean, a TokenAmount and an address or @user, in any order. " +
				"When the Boolean is true, send the amount and push a zero remainder; " +
				"when false, send nothing and push the amount unchanged.",
			Inputs: []Input{
				{"first", transferOperand},
				{"second", transferOperand},
				{"third", transferOperand},
			},
			Outputs: []values.Kind{values.KindTokenAmount},
			Resolve: resolveTransferRoles,
			Apply: func(env Env, operands []values.Value) ([]values.Value, error) {
				flag := operands[roleFlag].(values.Boolean)
				amount := operands[roleAmount].(values.TokenAmount)
				if err := checkAmount(OpMaybeTransferFunds, amount.Amount); err != nil {
					return nil, err
				}
				if !flag {
					return []values.Value{amount}, nil
				}
				env.Record(Transfer{
					Amount: amount,
					To:     operands[roleDestination],
				})
				return []values.Value{amount.Zero()}, nil
			},
		},
		{
			Name: OpGetPercentage,
			Doc:  "Pop a TokenAmount and a fraction between 0 and 1 (0.5 is half) and push that share of the amount.",
			Inputs: []Input{
				{"fraction", values.OnlyFloat},
				{"amount", values.OnlyAmount},
			},
			Outputs: []values.Kind{values.KindTokenAmount},
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				fraction := operands[0].(values.Float)
				if !(fraction >= 0 && fraction <= 1) {
					return nil, &ValueError{
						Operator: OpGetPercentage,
						Reason:   "fraction " + fraction.String() + " is outside [0, 1]",
					}
				}
				return []values.Value{operands[1].(values.TokenAmount).Scale(fraction)}, nil
			},
		},
	}
}

// Quote is the simulated exchange rate: the nominal amount carries over to the target token.
func Quote(from values.TokenAmount, to values.Address) values.TokenAmount {
	return values.NewTokenAmount(from.Amount, to)
}

func checkAmount(op string, amount values.Float) error {
	if !finite(float64(amount)) {
		return &ValueError{
			Operator: op,
			Reason:   "amount " + amount.String() + " is not a finite number",
		}
	}
	if amount < 0 {
		return &ValueError{
			Operator: op,
			Reason:   "amount is negative",
		}
	}
	return nil
}
