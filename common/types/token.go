package types

const (
	// NativeTokenSymbol is the denom of the chain's native staking and fee token
	NativeTokenSymbol = "uast"
)
