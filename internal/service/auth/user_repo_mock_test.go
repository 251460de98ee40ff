package auth

import (
	"context"
	"sync"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc          func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIdentifierFunc func(ctx context.Context, identifier string) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetByIdentifier []struct {
			Ctx        context.Context
			Identifier string
		}
	}
	lockCreate          sync.RWMutex
	lockGetByIdentifier sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if mock.GetByIdentifierFunc == nil {
		panic("userRepoMock.GetByIdentifierFunc: method is nil but userRepo.GetByIdentifier was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Identifier string
	}{Ctx: ctx, Identifier: identifier}
	mock.lockGetByIdentifier.Lock()
	mock.calls.GetByIdentifier = append(mock.calls.GetByIdentifier, callInfo)
	mock.lockGetByIdentifier.Unlock()
	return mock.GetByIdentifierFunc(ctx, identifier)
}

func (mock *userRepoMock) GetByIdentifierCalls() []struct {
	Ctx        context.Context
	Identifier string
} {
	mock.lockGetByIdentifier.RLock()
	calls := mock.calls.GetByIdentifier
	mock.lockGetByIdentifier.RUnlock()
	return calls
}
