package usecase

import (
	"fmt"

	"github.com/anft-xyz/goapi/base/ctx"
	hcdomain "github.com/anft-xyz/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	if err := im.repo.PingDB(context); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	if err := im.repo.PingChain(context); err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	return nil
}
