package client

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type AuctionContract interface {
	Address() common.Address
	Beneficiary(opts *bind.CallOpts) (common.Address, error)
	AuctionEndTime(opts *bind.CallOpts) (*big.Int, error)
	Highest(opts *bind.CallOpts) (models.HighestBid, error)
	GetBalance(opts *bind.CallOpts, account common.Address) (*big.Int, error)
	GetContractAccountBalance(opts *bind.CallOpts) (*big.Int, error)
	Bid(opts *bind.TransactOpts) (*types.Transaction, error)
	Withdraw(opts *bind.TransactOpts) (*types.Transaction, error)
	EndAuction(opts *bind.TransactOpts) (*types.Transaction, error)
}

type AuctionContractImpl struct {
	address  common.Address
	contract *bind.BoundContract
}

var _ AuctionContract = &AuctionContractImpl{}

// ParseAuctionABI parses raw (or the embedded ABI when raw is empty) and
// checks that every method the client calls is present.
func ParseAuctionABI(raw string) (abi.ABI, error) {
	if strings.TrimSpace(raw) == "" {
		raw = AuctionABI
	}
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse abi: %w", err)
	}
	for _, name := range requiredMethods {
		if _, ok := parsed.Methods[name]; !ok {
			return abi.ABI{}, fmt.Errorf("abi is missing method %s", name)
		}
	}
	return parsed, nil
}

func NewAuctionContract(deployment models.Deployment, backend bind.ContractBackend) (AuctionContract, error) {
	if deployment.Address == (common.Address{}) {
		return nil, fmt.Errorf("auction address is required")
	}
	parsed, err := ParseAuctionABI(deployment.ABI)
	if err != nil {
		return nil, err
	}
	return &AuctionContractImpl{
		address:  deployment.Address,
		contract: bind.NewBoundContract(deployment.Address, parsed, backend, backend, backend),
	}, nil
}

func (x *AuctionContractImpl) Address() common.Address {
	return x.address
}

func (x *AuctionContractImpl) Beneficiary(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	if err := x.contract.Call(opts, &out, MethodBeneficiary); err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (x *AuctionContractImpl) AuctionEndTime(opts *bind.CallOpts) (*big.Int, error) {
	return x.callUint(opts, MethodAuctionEndTime)
}

// Highest matches outputs by type so artifacts that declare the struct
// members in either order decode the same way.
func (x *AuctionContractImpl) Highest(opts *bind.CallOpts) (models.HighestBid, error) {
	var out []interface{}
	if err := x.contract.Call(opts, &out, MethodHighest); err != nil {
		return models.HighestBid{}, err
	}
	var bid models.HighestBid
	for _, value := range out {
		switch v := value.(type) {
		case common.Address:
			bid.Bidder = v
		case *big.Int:
			bid.Amount = v
		}
	}
	if bid.Amount == nil {
		return models.HighestBid{}, fmt.Errorf("unexpected %s outputs: %v", MethodHighest, out)
	}
	return bid, nil
}

func (x *AuctionContractImpl) GetBalance(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	return x.callUint(opts, MethodGetBalance, account)
}

func (x *AuctionContractImpl) GetContractAccountBalance(opts *bind.CallOpts) (*big.Int, error) {
	return x.callUint(opts, MethodGetContractAccountBalance)
}

func (x *AuctionContractImpl) Bid(opts *bind.TransactOpts) (*types.Transaction, error) {
	return x.contract.Transact(opts, MethodBid)
}

func (x *AuctionContractImpl) Withdraw(opts *bind.TransactOpts) (*types.Transaction, error) {
	return x.contract.Transact(opts, MethodWithdraw)
}

func (x *AuctionContractImpl) EndAuction(opts *bind.TransactOpts) (*types.Transaction, error) {
	return x.contract.Transact(opts, MethodEndAuction)
}

func (x *AuctionContractImpl) callUint(opts *bind.CallOpts, method string, params ...interface{}) (*big.Int, error) {
	var out []interface{}
	if err := x.contract.Call(opts, &out, method, params...); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
