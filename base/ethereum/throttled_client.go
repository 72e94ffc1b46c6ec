package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"

	"github.com/anft-xyz/goapi/domain"
)

// ThrottledClient bounds the number of in-flight rpc requests to one node
type ThrottledClient struct {
	client domain.EthClientRepo
	tokens chan struct{}
}

func NewThrottledClient(client domain.EthClientRepo, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	return &ThrottledClient{
		client: client,
		tokens: make(chan struct{}, n),
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.before(ctx); err != nil {
		return 0, err
	}
	defer c.after()
	return c.client.BlockNumber(ctx)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if err := c.before(ctx); err != nil {
		return nil, err
	}
	defer c.after()
	return c.client.CallContract(ctx, msg, number)
}

// InFlight is the number of requests holding a token
func (c *ThrottledClient) InFlight() int {
	return len(c.tokens)
}

func (c *ThrottledClient) before(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.tokens <- struct{}{}:
		return nil
	}
}

func (c *ThrottledClient) after() {
	<-c.tokens
}
