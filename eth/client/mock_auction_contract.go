package client

import (
	"math/big"

	models "github.com/dan13ram/auction-client/models"
	bind "github.com/ethereum/go-ethereum/accounts/abi/bind"
	common "github.com/ethereum/go-ethereum/common"
	types "github.com/ethereum/go-ethereum/core/types"
	mock "github.com/stretchr/testify/mock"
)

// MockAuctionContract is a mock type for the AuctionContract type
type MockAuctionContract struct {
	mock.Mock
}

type MockAuctionContract_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuctionContract) EXPECT() *MockAuctionContract_Expecter {
	return &MockAuctionContract_Expecter{mock: &_m.Mock}
}

// Address provides a mock function with no fields
func (_m *MockAuctionContract) Address() common.Address {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Address")
	}

	var r0 common.Address
	if rf, ok := ret.Get(0).(func() common.Address); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Address)
	}

	return r0
}

// MockAuctionContract_Address_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Address'
type MockAuctionContract_Address_Call struct {
	*mock.Call
}

// Address is a helper method to define mock.On call
func (_e *MockAuctionContract_Expecter) Address() *MockAuctionContract_Address_Call {
	return &MockAuctionContract_Address_Call{Call: _e.mock.On("Address")}
}

func (_c *MockAuctionContract_Address_Call) Run(run func()) *MockAuctionContract_Address_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockAuctionContract_Address_Call) Return(_a0 common.Address) *MockAuctionContract_Address_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAuctionContract_Address_Call) RunAndReturn(run func() common.Address) *MockAuctionContract_Address_Call {
	_c.Call.Return(run)
	return _c
}

// AuctionEndTime provides a mock function with given fields: opts
func (_m *MockAuctionContract) AuctionEndTime(opts *bind.CallOpts) (*big.Int, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for AuctionEndTime")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) (*big.Int, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) *big.Int); ok {
		r0 = rf(opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(*bind.CallOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_AuctionEndTime_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AuctionEndTime'
type MockAuctionContract_AuctionEndTime_Call struct {
	*mock.Call
}

// AuctionEndTime is a helper method to define mock.On call
//   - opts *bind.CallOpts
func (_e *MockAuctionContract_Expecter) AuctionEndTime(opts interface{}) *MockAuctionContract_AuctionEndTime_Call {
	return &MockAuctionContract_AuctionEndTime_Call{Call: _e.mock.On("AuctionEndTime", opts)}
}

func (_c *MockAuctionContract_AuctionEndTime_Call) Run(run func(opts *bind.CallOpts)) *MockAuctionContract_AuctionEndTime_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.CallOpts))
	})
	return _c
}

func (_c *MockAuctionContract_AuctionEndTime_Call) Return(_a0 *big.Int, _a1 error) *MockAuctionContract_AuctionEndTime_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_AuctionEndTime_Call) RunAndReturn(run func(*bind.CallOpts) (*big.Int, error)) *MockAuctionContract_AuctionEndTime_Call {
	_c.Call.Return(run)
	return _c
}

// Beneficiary provides a mock function with given fields: opts
func (_m *MockAuctionContract) Beneficiary(opts *bind.CallOpts) (common.Address, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for Beneficiary")
	}

	var r0 common.Address
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) (common.Address, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) common.Address); ok {
		r0 = rf(opts)
	} else {
		r0 = ret.Get(0).(common.Address)
	}

	if rf, ok := ret.Get(1).(func(*bind.CallOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_Beneficiary_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Beneficiary'
type MockAuctionContract_Beneficiary_Call struct {
	*mock.Call
}

// Beneficiary is a helper method to define mock.On call
//   - opts *bind.CallOpts
func (_e *MockAuctionContract_Expecter) Beneficiary(opts interface{}) *MockAuctionContract_Beneficiary_Call {
	return &MockAuctionContract_Beneficiary_Call{Call: _e.mock.On("Beneficiary", opts)}
}

func (_c *MockAuctionContract_Beneficiary_Call) Run(run func(opts *bind.CallOpts)) *MockAuctionContract_Beneficiary_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.CallOpts))
	})
	return _c
}

func (_c *MockAuctionContract_Beneficiary_Call) Return(_a0 common.Address, _a1 error) *MockAuctionContract_Beneficiary_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_Beneficiary_Call) RunAndReturn(run func(*bind.CallOpts) (common.Address, error)) *MockAuctionContract_Beneficiary_Call {
	_c.Call.Return(run)
	return _c
}

// Bid provides a mock function with given fields: opts
func (_m *MockAuctionContract) Bid(opts *bind.TransactOpts) (*types.Transaction, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for Bid")
	}

	var r0 *types.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.TransactOpts) (*types.Transaction, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.TransactOpts) *types.Transaction); ok {
		r0 = rf(opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Transaction)
		}
	}

	if rf, ok := ret.Get(1).(func(*bind.TransactOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_Bid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Bid'
type MockAuctionContract_Bid_Call struct {
	*mock.Call
}

// Bid is a helper method to define mock.On call
//   - opts *bind.TransactOpts
func (_e *MockAuctionContract_Expecter) Bid(opts interface{}) *MockAuctionContract_Bid_Call {
	return &MockAuctionContract_Bid_Call{Call: _e.mock.On("Bid", opts)}
}

func (_c *MockAuctionContract_Bid_Call) Run(run func(opts *bind.TransactOpts)) *MockAuctionContract_Bid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.TransactOpts))
	})
	return _c
}

func (_c *MockAuctionContract_Bid_Call) Return(_a0 *types.Transaction, _a1 error) *MockAuctionContract_Bid_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_Bid_Call) RunAndReturn(run func(*bind.TransactOpts) (*types.Transaction, error)) *MockAuctionContract_Bid_Call {
	_c.Call.Return(run)
	return _c
}

// EndAuction provides a mock function with given fields: opts
func (_m *MockAuctionContract) EndAuction(opts *bind.TransactOpts) (*types.Transaction, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for EndAuction")
	}

	var r0 *types.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.TransactOpts) (*types.Transaction, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.TransactOpts) *types.Transaction); ok {
		r0 = rf(opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Transaction)
		}
	}

	if rf, ok := ret.Get(1).(func(*bind.TransactOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_EndAuction_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'EndAuction'
type MockAuctionContract_EndAuction_Call struct {
	*mock.Call
}

// EndAuction is a helper method to define mock.On call
//   - opts *bind.TransactOpts
func (_e *MockAuctionContract_Expecter) EndAuction(opts interface{}) *MockAuctionContract_EndAuction_Call {
	return &MockAuctionContract_EndAuction_Call{Call: _e.mock.On("EndAuction", opts)}
}

func (_c *MockAuctionContract_EndAuction_Call) Run(run func(opts *bind.TransactOpts)) *MockAuctionContract_EndAuction_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.TransactOpts))
	})
	return _c
}

func (_c *MockAuctionContract_EndAuction_Call) Return(_a0 *types.Transaction, _a1 error) *MockAuctionContract_EndAuction_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_EndAuction_Call) RunAndReturn(run func(*bind.TransactOpts) (*types.Transaction, error)) *MockAuctionContract_EndAuction_Call {
	_c.Call.Return(run)
	return _c
}

// GetBalance provides a mock function with given fields: opts, account
func (_m *MockAuctionContract) GetBalance(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	ret := _m.Called(opts, account)

	if len(ret) == 0 {
		panic("no return value specified for GetBalance")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.CallOpts, common.Address) (*big.Int, error)); ok {
		return rf(opts, account)
	}
	if rf, ok := ret.Get(0).(func(*bind.CallOpts, common.Address) *big.Int); ok {
		r0 = rf(opts, account)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(*bind.CallOpts, common.Address) error); ok {
		r1 = rf(opts, account)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_GetBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBalance'
type MockAuctionContract_GetBalance_Call struct {
	*mock.Call
}

// GetBalance is a helper method to define mock.On call
//   - opts *bind.CallOpts
//   - account common.Address
func (_e *MockAuctionContract_Expecter) GetBalance(opts interface{}, account interface{}) *MockAuctionContract_GetBalance_Call {
	return &MockAuctionContract_GetBalance_Call{Call: _e.mock.On("GetBalance", opts, account)}
}

func (_c *MockAuctionContract_GetBalance_Call) Run(run func(opts *bind.CallOpts, account common.Address)) *MockAuctionContract_GetBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.CallOpts), args[1].(common.Address))
	})
	return _c
}

func (_c *MockAuctionContract_GetBalance_Call) Return(_a0 *big.Int, _a1 error) *MockAuctionContract_GetBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_GetBalance_Call) RunAndReturn(run func(*bind.CallOpts, common.Address) (*big.Int, error)) *MockAuctionContract_GetBalance_Call {
	_c.Call.Return(run)
	return _c
}

// GetContractAccountBalance provides a mock function with given fields: opts
func (_m *MockAuctionContract) GetContractAccountBalance(opts *bind.CallOpts) (*big.Int, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for GetContractAccountBalance")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) (*big.Int, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) *big.Int); ok {
		r0 = rf(opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(*bind.CallOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_GetContractAccountBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetContractAccountBalance'
type MockAuctionContract_GetContractAccountBalance_Call struct {
	*mock.Call
}

// GetContractAccountBalance is a helper method to define mock.On call
//   - opts *bind.CallOpts
func (_e *MockAuctionContract_Expecter) GetContractAccountBalance(opts interface{}) *MockAuctionContract_GetContractAccountBalance_Call {
	return &MockAuctionContract_GetContractAccountBalance_Call{Call: _e.mock.On("GetContractAccountBalance", opts)}
}

func (_c *MockAuctionContract_GetContractAccountBalance_Call) Run(run func(opts *bind.CallOpts)) *MockAuctionContract_GetContractAccountBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.CallOpts))
	})
	return _c
}

func (_c *MockAuctionContract_GetContractAccountBalance_Call) Return(_a0 *big.Int, _a1 error) *MockAuctionContract_GetContractAccountBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_GetContractAccountBalance_Call) RunAndReturn(run func(*bind.CallOpts) (*big.Int, error)) *MockAuctionContract_GetContractAccountBalance_Call {
	_c.Call.Return(run)
	return _c
}

// Highest provides a mock function with given fields: opts
func (_m *MockAuctionContract) Highest(opts *bind.CallOpts) (models.HighestBid, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for Highest")
	}

	var r0 models.HighestBid
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) (models.HighestBid, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.CallOpts) models.HighestBid); ok {
		r0 = rf(opts)
	} else {
		r0 = ret.Get(0).(models.HighestBid)
	}

	if rf, ok := ret.Get(1).(func(*bind.CallOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_Highest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Highest'
type MockAuctionContract_Highest_Call struct {
	*mock.Call
}

// Highest is a helper method to define mock.On call
//   - opts *bind.CallOpts
func (_e *MockAuctionContract_Expecter) Highest(opts interface{}) *MockAuctionContract_Highest_Call {
	return &MockAuctionContract_Highest_Call{Call: _e.mock.On("Highest", opts)}
}

func (_c *MockAuctionContract_Highest_Call) Run(run func(opts *bind.CallOpts)) *MockAuctionContract_Highest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.CallOpts))
	})
	return _c
}

func (_c *MockAuctionContract_Highest_Call) Return(_a0 models.HighestBid, _a1 error) *MockAuctionContract_Highest_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_Highest_Call) RunAndReturn(run func(*bind.CallOpts) (models.HighestBid, error)) *MockAuctionContract_Highest_Call {
	_c.Call.Return(run)
	return _c
}

// Withdraw provides a mock function with given fields: opts
func (_m *MockAuctionContract) Withdraw(opts *bind.TransactOpts) (*types.Transaction, error) {
	ret := _m.Called(opts)

	if len(ret) == 0 {
		panic("no return value specified for Withdraw")
	}

	var r0 *types.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(*bind.TransactOpts) (*types.Transaction, error)); ok {
		return rf(opts)
	}
	if rf, ok := ret.Get(0).(func(*bind.TransactOpts) *types.Transaction); ok {
		r0 = rf(opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Transaction)
		}
	}

	if rf, ok := ret.Get(1).(func(*bind.TransactOpts) error); ok {
		r1 = rf(opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuctionContract_Withdraw_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Withdraw'
type MockAuctionContract_Withdraw_Call struct {
	*mock.Call
}

// Withdraw is a helper method to define mock.On call
//   - opts *bind.TransactOpts
func (_e *MockAuctionContract_Expecter) Withdraw(opts interface{}) *MockAuctionContract_Withdraw_Call {
	return &MockAuctionContract_Withdraw_Call{Call: _e.mock.On("Withdraw", opts)}
}

func (_c *MockAuctionContract_Withdraw_Call) Run(run func(opts *bind.TransactOpts)) *MockAuctionContract_Withdraw_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*bind.TransactOpts))
	})
	return _c
}

func (_c *MockAuctionContract_Withdraw_Call) Return(_a0 *types.Transaction, _a1 error) *MockAuctionContract_Withdraw_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuctionContract_Withdraw_Call) RunAndReturn(run func(*bind.TransactOpts) (*types.Transaction, error)) *MockAuctionContract_Withdraw_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuctionContract creates a new instance of MockAuctionContract. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuctionContract(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuctionContract {
	m := &MockAuctionContract{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
