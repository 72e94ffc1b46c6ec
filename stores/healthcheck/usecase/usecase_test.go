package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain/mocks"
)

func TestCheck(t *testing.T) {
	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingChain", mock.Anything).Return(nil).Once()

	require.NoError(t, New(repo).Check(ctx.Background()))
}

func TestCheckFailed(t *testing.T) {
	errDown := errors.New("down")

	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(errDown).Once()

	err := New(repo).Check(ctx.Background())
	require.ErrorIs(t, err, errDown)
	require.Contains(t, err.Error(), "db")

	repo = mocks.NewHealthCheckRepo(t)
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingChain", mock.Anything).Return(errDown).Once()

	err = New(repo).Check(ctx.Background())
	require.ErrorIs(t, err, errDown)
	require.Contains(t, err.Error(), "chain")
}
