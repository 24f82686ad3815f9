package bridge

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/astermint/node/plugins/bridge/types"
)

type noopMsg struct{}

func (noopMsg) Route() string                  { return "noop" }
func (noopMsg) Type() string                   { return "noop" }
func (noopMsg) ValidateBasic() sdk.Error       { return nil }
func (noopMsg) GetSignBytes() []byte           { return nil }
func (noopMsg) GetSigners() []sdk.AccAddress   { return nil }
func (noopMsg) GetInvolvedAddresses() []sdk.AccAddress { return nil }

func TestHandlerUpdateConfig(t *testing.T) {
	ctx, k, _, owner := setupOutcomeTest(t)
	handler := NewHandler(k)

	res := handler(ctx, types.NewUpdateConfigMsg(owner, "", "", 600, 0))
	require.True(t, res.IsOK())

	config, err := k.GetConfig(ctx)
	require.Nil(t, err)
	require.Equal(t, uint64(600), config.IBCTimeoutSeconds)
}

func TestHandlerErrorCodesSurface(t *testing.T) {
	ctx, k, _, owner := setupOutcomeTest(t)
	handler := NewHandler(k)

	res := handler(ctx, types.NewDisableTokenMsg(owner, "NOSUCH"))
	require.False(t, res.IsOK())
	require.Equal(t, types.ErrTokenDoesNotExist("NOSUCH").Result().Code, res.Code)
}

func TestHandlerUnknownMsg(t *testing.T) {
	ctx, k, _, _ := setupOutcomeTest(t)
	handler := NewHandler(k)

	res := handler(ctx, noopMsg{})
	require.False(t, res.IsOK())
}
