package prompts

type Example struct {
	Instruction string
	Program     string
}

var Examples = []Example{
	{
		Instruction: "swap 0.001 ETH for AERO",
		Program: `PUSH 0.001
CONVERT_ETH_TO_WEI
PUSH "AERO"
GET_TOKEN_ADDRESS
EXCHANGE_FUNDS
POP`,
	},
	{
		Instruction: "send 0.01 ETH to @alice",
		Program: `PUSH 0.01
CONVERT_ETH_TO_WEI
PUSH @alice
TRANSFER_FUNDS
POP`,
	},
	{
		Instruction: "swap 0.001 ETH for AERO, send half to @user2, else send it to @user3",
		Program: `PUSH 0.001
CONVERT_ETH_TO_WEI
PUSH "AERO"
GET_TOKEN_ADDRESS
EXCHANGE_FUNDS
# half of what we received
PUSH 0.5
SWAP
GET_PERCENTAGE
ASSIGN "half"
PUSH true &half @user2
MAYBE_TRANSFER_FUNDS
# whatever was not sent goes to user3
PUSH @user3
TRANSFER_FUNDS
POP`,
	},
	{
		Instruction: "if 3 is greater than 2 send 0.002 ETH to 0x00000000000000000000000000000000000a11ce",
		Program: `PUSH 3 2
GREATER_THAN
BRANCH 4
PUSH 0.002
CONVERT_ETH_TO_WEI
PUSH 0x00000000000000000000000000000000000a11ce
TRANSFER_FUNDS`,
	},
}
