package bridge

import (
	app "github.com/astermint/node/common/types"
)

const abciQueryPrefix = "bridge"

// InitPlugin initializes the plugin.
func InitPlugin(appp app.ChainApp, keeper Keeper) {
	// add msg handlers
	for route, handler := range Routes(keeper) {
		appp.GetRouter().AddRoute(route, handler)
	}

	// add abci handlers
	handler := createQueryHandler(keeper)
	appp.RegisterQueryHandler(abciQueryPrefix, handler)
}

func createQueryHandler(keeper Keeper) app.AbciQueryHandler {
	return createAbciQueryHandler(keeper)
}
