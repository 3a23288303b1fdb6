package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/gasopt-contract/rpc/gasopt"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// wrapper over Neo RPC client providing read-only access to the GasOpt
// contract.
type remoteBlockchain struct {
	rpc    *rpcclient.Client
	reader *gasopt.ContractReader

	currentBlock uint32
}

// newRemoteBlockchain dials Neo RPC server and returns remoteBlockchain bound
// to the GasOpt contract with the given hash. Connection and all requests are
// done within the given timeout.
func newRemoteBlockchain(log *zap.Logger, endpoint string, contract util.Uint160, timeout time.Duration) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    timeout,
		RequestTimeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	_, err = c.GetContractStateByHash(contract)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get state of the GasOpt contract '%s': %w", contract.StringLE(), err)
	}

	log.Debug("connected to the Neo RPC server",
		zap.String("endpoint", endpoint),
		zap.Uint32("blocks", nLatestBlock),
		zap.Stringer("contract", contract))

	return &remoteBlockchain{
		rpc:          c,
		reader:       gasopt.NewReader(invoker.New(c, nil), contract),
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// parseHash160 accepts both Neo addresses and little-endian hex strings.
func parseHash160(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return h, fmt.Errorf("'%s' is neither an address nor an LE hash", s)
	}

	return h, nil
}
