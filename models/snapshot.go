package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Field string

const (
	FieldBeneficiary     Field = "beneficiary"
	FieldAuctionEndTime  Field = "auctionEndTime"
	FieldHighestBid      Field = "highestBid"
	FieldPendingBalance  Field = "pendingBalance"
	FieldContractBalance Field = "contractBalance"
)

var Fields = []Field{
	FieldBeneficiary,
	FieldAuctionEndTime,
	FieldHighestBid,
	FieldPendingBalance,
	FieldContractBalance,
}

// AuctionScoped reports whether the field describes the auction itself rather
// than anything observed through the active identity.
func (f Field) AuctionScoped() bool {
	return f == FieldBeneficiary || f == FieldAuctionEndTime
}

func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

type HighestBid struct {
	Amount *big.Int       `json:"amount"`
	Bidder common.Address `json:"bidder"`
}

func (b HighestBid) Copy() HighestBid {
	return HighestBid{Amount: copyInt(b.Amount), Bidder: b.Bidder}
}

// AuctionSnapshot is the locally composed view of the auction. A nil field is
// Unknown. Values handed out by the synchronizer are deep copies.
type AuctionSnapshot struct {
	Identity        common.Address  `json:"identity"`
	Beneficiary     *common.Address `json:"beneficiary"`
	AuctionEndTime  *time.Time      `json:"auction_end_time"`
	HighestBid      *HighestBid     `json:"highest_bid"`
	PendingBalance  *big.Int        `json:"pending_balance"`
	ContractBalance *big.Int        `json:"contract_balance"`
}

func (s AuctionSnapshot) Copy() AuctionSnapshot {
	out := AuctionSnapshot{
		Identity:        s.Identity,
		PendingBalance:  copyInt(s.PendingBalance),
		ContractBalance: copyInt(s.ContractBalance),
	}
	if s.Beneficiary != nil {
		b := *s.Beneficiary
		out.Beneficiary = &b
	}
	if s.AuctionEndTime != nil {
		t := *s.AuctionEndTime
		out.AuctionEndTime = &t
	}
	if s.HighestBid != nil {
		hb := s.HighestBid.Copy()
		out.HighestBid = &hb
	}
	return out
}

func (s AuctionSnapshot) Known(f Field) bool {
	switch f {
	case FieldBeneficiary:
		return s.Beneficiary != nil
	case FieldAuctionEndTime:
		return s.AuctionEndTime != nil
	case FieldHighestBid:
		return s.HighestBid != nil
	case FieldPendingBalance:
		return s.PendingBalance != nil
	case FieldContractBalance:
		return s.ContractBalance != nil
	}
	return false
}

// ResetIdentityScoped keeps beneficiary and end time and forgets the rest.
func (s *AuctionSnapshot) ResetIdentityScoped(identity common.Address) {
	s.Identity = identity
	s.HighestBid = nil
	s.PendingBalance = nil
	s.ContractBalance = nil
}

// CanWithdraw is a presentation hint: a refund is known to be owed.
func (s AuctionSnapshot) CanWithdraw() bool {
	return s.PendingBalance != nil && s.PendingBalance.Sign() > 0
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
