package types

const (
	RouteBridge = "bridge"

	LinkTokenMsgType     = "bridgeLinkToken"
	EnableTokenMsgType   = "bridgeEnableToken"
	DisableTokenMsgType  = "bridgeDisableToken"
	ReceiveMsgType       = "bridgeReceive"
	SendMsgType          = "bridgeSend"
	RetrySendMsgType     = "bridgeRetrySend"
	AddSignerMsgType     = "bridgeAddSigner"
	RemoveSignerMsgType  = "bridgeRemoveSigner"
	UpdateConfigMsgType  = "bridgeUpdateConfig"
	ProposeOwnerMsgType  = "bridgeProposeOwner"
	DropProposalMsgType  = "bridgeDropOwnerProposal"
	ClaimOwnerMsgType    = "bridgeClaimOwner"

	// MinIBCTimeoutSeconds is the minimum timeout for outbound transfers
	MinIBCTimeoutSeconds uint64 = 5
	// MaxIBCTimeoutSeconds is the maximum timeout for outbound transfers
	MaxIBCTimeoutSeconds uint64 = 60 * 60

	// MinSignerThreshold is the smallest number of valid signatures the
	// verifier will ever accept, no matter how few signers are loaded
	MinSignerThreshold = 2

	// CreateDenomReplyID correlates a wrapped-denom creation request with
	// its asynchronous confirmation
	CreateDenomReplyID uint64 = 1
	// TransferDispatchReplyID correlates an outbound transfer with the
	// confirmation carrying its channel and sequence
	TransferDispatchReplyID uint64 = 2

	// Pagination bounds for list queries
	DefaultQueryLimit = 10
	MaxQueryLimit     = 30

	// OwnershipProposalBlocks is how many blocks an ownership proposal
	// stays claimable
	OwnershipProposalBlocks int64 = 120960
)
