package client

import (
	"context"
	"math/big"
	"time"

	bind "github.com/ethereum/go-ethereum/accounts/abi/bind"
	common "github.com/ethereum/go-ethereum/common"
	types "github.com/ethereum/go-ethereum/core/types"
	mock "github.com/stretchr/testify/mock"
)

// MockEthereumClient is a mock type for the EthereumClient type
type MockEthereumClient struct {
	mock.Mock
}

type MockEthereumClient_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEthereumClient) EXPECT() *MockEthereumClient_Expecter {
	return &MockEthereumClient_Expecter{mock: &_m.Mock}
}

// Backend provides a mock function with no fields
func (_m *MockEthereumClient) Backend() bind.ContractBackend {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Backend")
	}

	var r0 bind.ContractBackend
	if rf, ok := ret.Get(0).(func() bind.ContractBackend); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(bind.ContractBackend)
		}
	}

	return r0
}

// MockEthereumClient_Backend_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Backend'
type MockEthereumClient_Backend_Call struct {
	*mock.Call
}

// Backend is a helper method to define mock.On call
func (_e *MockEthereumClient_Expecter) Backend() *MockEthereumClient_Backend_Call {
	return &MockEthereumClient_Backend_Call{Call: _e.mock.On("Backend")}
}

func (_c *MockEthereumClient_Backend_Call) Run(run func()) *MockEthereumClient_Backend_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEthereumClient_Backend_Call) Return(_a0 bind.ContractBackend) *MockEthereumClient_Backend_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEthereumClient_Backend_Call) RunAndReturn(run func() bind.ContractBackend) *MockEthereumClient_Backend_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with no fields
func (_m *MockEthereumClient) Close() {
	_m.Called()
}

// MockEthereumClient_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockEthereumClient_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEthereumClient_Expecter) Close() *MockEthereumClient_Close_Call {
	return &MockEthereumClient_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEthereumClient_Close_Call) Run(run func()) *MockEthereumClient_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEthereumClient_Close_Call) Return() *MockEthereumClient_Close_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockEthereumClient_Close_Call) RunAndReturn(run func()) *MockEthereumClient_Close_Call {
	_c.Run(run)
	return _c
}

// GetBlockNumber provides a mock function with given fields: ctx
func (_m *MockEthereumClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetBlockNumber")
	}

	var r0 uint64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (uint64, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) uint64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(uint64)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockEthereumClient_GetBlockNumber_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBlockNumber'
type MockEthereumClient_GetBlockNumber_Call struct {
	*mock.Call
}

// GetBlockNumber is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockEthereumClient_Expecter) GetBlockNumber(ctx interface{}) *MockEthereumClient_GetBlockNumber_Call {
	return &MockEthereumClient_GetBlockNumber_Call{Call: _e.mock.On("GetBlockNumber", ctx)}
}

func (_c *MockEthereumClient_GetBlockNumber_Call) Run(run func(ctx context.Context)) *MockEthereumClient_GetBlockNumber_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockEthereumClient_GetBlockNumber_Call) Return(_a0 uint64, _a1 error) *MockEthereumClient_GetBlockNumber_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockEthereumClient_GetBlockNumber_Call) RunAndReturn(run func(context.Context) (uint64, error)) *MockEthereumClient_GetBlockNumber_Call {
	_c.Call.Return(run)
	return _c
}

// GetChainID provides a mock function with given fields: ctx
func (_m *MockEthereumClient) GetChainID(ctx context.Context) (*big.Int, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetChainID")
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

// MockEthereumClient_GetChainID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetChainID'
type MockEthereumClient_GetChainID_Call struct {
	*mock.Call
}

// GetChainID is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockEthereumClient_Expecter) GetChainID(ctx interface{}) *MockEthereumClient_GetChainID_Call {
	return &MockEthereumClient_GetChainID_Call{Call: _e.mock.On("GetChainID", ctx)}
}

func (_c *MockEthereumClient_GetChainID_Call) Run(run func(ctx context.Context)) *MockEthereumClient_GetChainID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockEthereumClient_GetChainID_Call) Return(_a0 *big.Int, _a1 error) *MockEthereumClient_GetChainID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockEthereumClient_GetChainID_Call) RunAndReturn(run func(context.Context) (*big.Int, error)) *MockEthereumClient_GetChainID_Call {
	_c.Call.Return(run)
	return _c
}

// GetTransactionReceipt provides a mock function with given fields: ctx, txHash
func (_m *MockEthereumClient) GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ret := _m.Called(ctx, txHash)

	if len(ret) == 0 {
		panic("no return value specified for GetTransactionReceipt")
	}

	var r0 *types.Receipt
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Hash) (*types.Receipt, error)); ok {
		return rf(ctx, txHash)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Hash) *types.Receipt); ok {
		r0 = rf(ctx, txHash)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Receipt)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Hash) error); ok {
		r1 = rf(ctx, txHash)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockEthereumClient_GetTransactionReceipt_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTransactionReceipt'
type MockEthereumClient_GetTransactionReceipt_Call struct {
	*mock.Call
}

// GetTransactionReceipt is a helper method to define mock.On call
//   - ctx context.Context
//   - txHash common.Hash
func (_e *MockEthereumClient_Expecter) GetTransactionReceipt(ctx interface{}, txHash interface{}) *MockEthereumClient_GetTransactionReceipt_Call {
	return &MockEthereumClient_GetTransactionReceipt_Call{Call: _e.mock.On("GetTransactionReceipt", ctx, txHash)}
}

func (_c *MockEthereumClient_GetTransactionReceipt_Call) Run(run func(ctx context.Context, txHash common.Hash)) *MockEthereumClient_GetTransactionReceipt_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Hash))
	})
	return _c
}

func (_c *MockEthereumClient_GetTransactionReceipt_Call) Return(_a0 *types.Receipt, _a1 error) *MockEthereumClient_GetTransactionReceipt_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockEthereumClient_GetTransactionReceipt_Call) RunAndReturn(run func(context.Context, common.Hash) (*types.Receipt, error)) *MockEthereumClient_GetTransactionReceipt_Call {
	_c.Call.Return(run)
	return _c
}

// Timeout provides a mock function with no fields
func (_m *MockEthereumClient) Timeout() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Timeout")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// MockEthereumClient_Timeout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Timeout'
type MockEthereumClient_Timeout_Call struct {
	*mock.Call
}

// Timeout is a helper method to define mock.On call
func (_e *MockEthereumClient_Expecter) Timeout() *MockEthereumClient_Timeout_Call {
	return &MockEthereumClient_Timeout_Call{Call: _e.mock.On("Timeout")}
}

func (_c *MockEthereumClient_Timeout_Call) Run(run func()) *MockEthereumClient_Timeout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEthereumClient_Timeout_Call) Return(_a0 time.Duration) *MockEthereumClient_Timeout_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEthereumClient_Timeout_Call) RunAndReturn(run func() time.Duration) *MockEthereumClient_Timeout_Call {
	_c.Call.Return(run)
	return _c
}

// ValidateNetwork provides a mock function with given fields: ctx, expectedChainID
func (_m *MockEthereumClient) ValidateNetwork(ctx context.Context, expectedChainID string) error {
	ret := _m.Called(ctx, expectedChainID)

	if len(ret) == 0 {
		panic("no return value specified for ValidateNetwork")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, expectedChainID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEthereumClient_ValidateNetwork_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateNetwork'
type MockEthereumClient_ValidateNetwork_Call struct {
	*mock.Call
}

// ValidateNetwork is a helper method to define mock.On call
//   - ctx context.Context
//   - expectedChainID string
func (_e *MockEthereumClient_Expecter) ValidateNetwork(ctx interface{}, expectedChainID interface{}) *MockEthereumClient_ValidateNetwork_Call {
	return &MockEthereumClient_ValidateNetwork_Call{Call: _e.mock.On("ValidateNetwork", ctx, expectedChainID)}
}

func (_c *MockEthereumClient_ValidateNetwork_Call) Run(run func(ctx context.Context, expectedChainID string)) *MockEthereumClient_ValidateNetwork_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockEthereumClient_ValidateNetwork_Call) Return(_a0 error) *MockEthereumClient_ValidateNetwork_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEthereumClient_ValidateNetwork_Call) RunAndReturn(run func(context.Context, string) error) *MockEthereumClient_ValidateNetwork_Call {
	_c.Call.Return(run)
	return _c
}

// WaitForReceipt provides a mock function with given fields: ctx, txHash
func (_m *MockEthereumClient) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ret := _m.Called(ctx, txHash)

	if len(ret) == 0 {
		panic("no return value specified for WaitForReceipt")
	}

	var r0 *types.Receipt
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Hash) (*types.Receipt, error)); ok {
		return rf(ctx, txHash)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Hash) *types.Receipt); ok {
		r0 = rf(ctx, txHash)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Receipt)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Hash) error); ok {
		r1 = rf(ctx, txHash)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockEthereumClient_WaitForReceipt_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WaitForReceipt'
type MockEthereumClient_WaitForReceipt_Call struct {
	*mock.Call
}

// WaitForReceipt is a helper method to define mock.On call
//   - ctx context.Context
//   - txHash common.Hash
func (_e *MockEthereumClient_Expecter) WaitForReceipt(ctx interface{}, txHash interface{}) *MockEthereumClient_WaitForReceipt_Call {
	return &MockEthereumClient_WaitForReceipt_Call{Call: _e.mock.On("WaitForReceipt", ctx, txHash)}
}

func (_c *MockEthereumClient_WaitForReceipt_Call) Run(run func(ctx context.Context, txHash common.Hash)) *MockEthereumClient_WaitForReceipt_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Hash))
	})
	return _c
}

func (_c *MockEthereumClient_WaitForReceipt_Call) Return(_a0 *types.Receipt, _a1 error) *MockEthereumClient_WaitForReceipt_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockEthereumClient_WaitForReceipt_Call) RunAndReturn(run func(context.Context, common.Hash) (*types.Receipt, error)) *MockEthereumClient_WaitForReceipt_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEthereumClient creates a new instance of MockEthereumClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEthereumClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEthereumClient {
	m := &MockEthereumClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
