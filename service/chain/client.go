package chain

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/anft-xyz/goapi/base/ctx"
	baseEth "github.com/anft-xyz/goapi/base/ethereum"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

const defaultMaxConcurrentCalls = 8

type ClientCfg struct {
	RpcUrls map[int32]string
	// MaxConcurrentCalls bounds in-flight requests per rpc node
	MaxConcurrentCalls int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	BlockNumber(bCtx.Ctx, int32) (uint64, error)
}

type clientImpl struct {
	clients map[int32]domain.EthClientRepo
	metrics metrics.Service
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	repos := make(map[int32]domain.EthClientRepo)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		repos[chainId] = client
	}
	return NewClientWithRepos(repos, cfg.MaxConcurrentCalls), anyerr
}

// NewClientWithRepos wraps already connected nodes, each throttled to maxConcurrent calls
func NewClientWithRepos(repos map[int32]domain.EthClientRepo, maxConcurrent int) Client {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentCalls
	}
	clients := make(map[int32]domain.EthClientRepo, len(repos))
	for chainId, repo := range repos {
		clients[chainId] = baseEth.NewThrottledClient(repo, maxConcurrent)
	}
	return &clientImpl{
		clients: clients,
		metrics: metrics.New("chain"),
	}
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	chainTag := strconv.Itoa(int(chainId))
	defer c.metrics.BumpTime("call.latency", "chain", chainTag, "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		c.metrics.BumpSum("call.err", 1, "chain", chainTag, "method", method)
		ctx.WithFields(log.Fields{
			"err":     err,
			"method":  method,
			"address": addr.Hex(),
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId int32) (uint64, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return 0, ErrUnsupportedChain
	}
	return client.BlockNumber(ctx)
}
