package auction

import (
	"context"
	"math/big"

	client "github.com/dan13ram/auction-client/eth/client"
	bind "github.com/ethereum/go-ethereum/accounts/abi/bind"
	common "github.com/ethereum/go-ethereum/common"
	mock "github.com/stretchr/testify/mock"
)

// MockConnectionProvider is a mock type for the ConnectionProvider type
type MockConnectionProvider struct {
	mock.Mock
}

type MockConnectionProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockConnectionProvider) EXPECT() *MockConnectionProvider_Expecter {
	return &MockConnectionProvider_Expecter{mock: &_m.Mock}
}

// AccountChanges provides a mock function with no fields
func (_m *MockConnectionProvider) AccountChanges() <-chan common.Address {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AccountChanges")
	}

	var r0 <-chan common.Address
	if rf, ok := ret.Get(0).(func() <-chan common.Address); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(<-chan common.Address)
		}
	}

	return r0
}

// MockConnectionProvider_AccountChanges_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AccountChanges'
type MockConnectionProvider_AccountChanges_Call struct {
	*mock.Call
}

// AccountChanges is a helper method to define mock.On call
func (_e *MockConnectionProvider_Expecter) AccountChanges() *MockConnectionProvider_AccountChanges_Call {
	return &MockConnectionProvider_AccountChanges_Call{Call: _e.mock.On("AccountChanges")}
}

func (_c *MockConnectionProvider_AccountChanges_Call) Run(run func()) *MockConnectionProvider_AccountChanges_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockConnectionProvider_AccountChanges_Call) Return(_a0 <-chan common.Address) *MockConnectionProvider_AccountChanges_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnectionProvider_AccountChanges_Call) RunAndReturn(run func() <-chan common.Address) *MockConnectionProvider_AccountChanges_Call {
	_c.Call.Return(run)
	return _c
}

// Backend provides a mock function with no fields
func (_m *MockConnectionProvider) Backend() client.EthereumClient {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Backend")
	}

	var r0 client.EthereumClient
	if rf, ok := ret.Get(0).(func() client.EthereumClient); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(client.EthereumClient)
		}
	}

	return r0
}

// MockConnectionProvider_Backend_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Backend'
type MockConnectionProvider_Backend_Call struct {
	*mock.Call
}

// Backend is a helper method to define mock.On call
func (_e *MockConnectionProvider_Expecter) Backend() *MockConnectionProvider_Backend_Call {
	return &MockConnectionProvider_Backend_Call{Call: _e.mock.On("Backend")}
}

func (_c *MockConnectionProvider_Backend_Call) Run(run func()) *MockConnectionProvider_Backend_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockConnectionProvider_Backend_Call) Return(_a0 client.EthereumClient) *MockConnectionProvider_Backend_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnectionProvider_Backend_Call) RunAndReturn(run func() client.EthereumClient) *MockConnectionProvider_Backend_Call {
	_c.Call.Return(run)
	return _c
}

// GetAccounts provides a mock function with given fields: ctx
func (_m *MockConnectionProvider) GetAccounts(ctx context.Context) ([]common.Address, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetAccounts")
	}

	var r0 []common.Address
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]common.Address, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []common.Address); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]common.Address)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConnectionProvider_GetAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAccounts'
type MockConnectionProvider_GetAccounts_Call struct {
	*mock.Call
}

// GetAccounts is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockConnectionProvider_Expecter) GetAccounts(ctx interface{}) *MockConnectionProvider_GetAccounts_Call {
	return &MockConnectionProvider_GetAccounts_Call{Call: _e.mock.On("GetAccounts", ctx)}
}

func (_c *MockConnectionProvider_GetAccounts_Call) Run(run func(ctx context.Context)) *MockConnectionProvider_GetAccounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockConnectionProvider_GetAccounts_Call) Return(_a0 []common.Address, _a1 error) *MockConnectionProvider_GetAccounts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConnectionProvider_GetAccounts_Call) RunAndReturn(run func(context.Context) ([]common.Address, error)) *MockConnectionProvider_GetAccounts_Call {
	_c.Call.Return(run)
	return _c
}

// GetNetworkID provides a mock function with given fields: ctx
func (_m *MockConnectionProvider) GetNetworkID(ctx context.Context) (*big.Int, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetNetworkID")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*big.Int, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *big.Int); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConnectionProvider_GetNetworkID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetNetworkID'
type MockConnectionProvider_GetNetworkID_Call struct {
	*mock.Call
}

// GetNetworkID is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockConnectionProvider_Expecter) GetNetworkID(ctx interface{}) *MockConnectionProvider_GetNetworkID_Call {
	return &MockConnectionProvider_GetNetworkID_Call{Call: _e.mock.On("GetNetworkID", ctx)}
}

func (_c *MockConnectionProvider_GetNetworkID_Call) Run(run func(ctx context.Context)) *MockConnectionProvider_GetNetworkID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockConnectionProvider_GetNetworkID_Call) Return(_a0 *big.Int, _a1 error) *MockConnectionProvider_GetNetworkID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConnectionProvider_GetNetworkID_Call) RunAndReturn(run func(context.Context) (*big.Int, error)) *MockConnectionProvider_GetNetworkID_Call {
	_c.Call.Return(run)
	return _c
}

// Transactor provides a mock function with given fields: ctx, account
func (_m *MockConnectionProvider) Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	ret := _m.Called(ctx, account)

	if len(ret) == 0 {
		panic("no return value specified for Transactor")
	}

	var r0 *bind.TransactOpts
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) (*bind.TransactOpts, error)); ok {
		return rf(ctx, account)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) *bind.TransactOpts); ok {
		r0 = rf(ctx, account)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*bind.TransactOpts)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address) error); ok {
		r1 = rf(ctx, account)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConnectionProvider_Transactor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Transactor'
type MockConnectionProvider_Transactor_Call struct {
	*mock.Call
}

// Transactor is a helper method to define mock.On call
//   - ctx context.Context
//   - account common.Address
func (_e *MockConnectionProvider_Expecter) Transactor(ctx interface{}, account interface{}) *MockConnectionProvider_Transactor_Call {
	return &MockConnectionProvider_Transactor_Call{Call: _e.mock.On("Transactor", ctx, account)}
}

func (_c *MockConnectionProvider_Transactor_Call) Run(run func(ctx context.Context, account common.Address)) *MockConnectionProvider_Transactor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address))
	})
	return _c
}

func (_c *MockConnectionProvider_Transactor_Call) Return(_a0 *bind.TransactOpts, _a1 error) *MockConnectionProvider_Transactor_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConnectionProvider_Transactor_Call) RunAndReturn(run func(context.Context, common.Address) (*bind.TransactOpts, error)) *MockConnectionProvider_Transactor_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockConnectionProvider creates a new instance of MockConnectionProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockConnectionProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConnectionProvider {
	m := &MockConnectionProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
