package main

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dan13ram/auction-client/models"
	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common"
)

const unknown = "unknown"

func formatWei(v *big.Int) string {
	if v == nil {
		return unknown
	}
	return humanize.BigComma(v) + " wei"
}

func formatEndTime(t *time.Time, now time.Time) string {
	if t == nil {
		return unknown
	}
	if t.Unix() == 0 {
		return "not set"
	}
	return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339), humanize.RelTime(*t, now, "ago", "from now"))
}

func formatHighestBid(bid *models.HighestBid) string {
	if bid == nil {
		return unknown
	}
	if bid.Bidder == (common.Address{}) {
		return "no bids yet"
	}
	return fmt.Sprintf("%s by %s", formatWei(bid.Amount), bid.Bidder.Hex())
}

func printSnapshot(w io.Writer, snapshot models.AuctionSnapshot, isBeneficiary bool) {
	beneficiary := unknown
	if snapshot.Known(models.FieldBeneficiary) {
		beneficiary = snapshot.Beneficiary.Hex()
		if isBeneficiary {
			beneficiary += " (you)"
		}
	}
	pending := unknown
	if snapshot.Known(models.FieldPendingBalance) {
		pending = formatWei(snapshot.PendingBalance)
		if snapshot.CanWithdraw() {
			pending += " (withdrawable)"
		}
	}
	contractBalance := unknown
	if snapshot.Known(models.FieldContractBalance) {
		contractBalance = formatWei(snapshot.ContractBalance)
	}

	fmt.Fprintf(w, "account:          %s\n", snapshot.Identity.Hex())
	fmt.Fprintf(w, "beneficiary:      %s\n", beneficiary)
	fmt.Fprintf(w, "ends:             %s\n", formatEndTime(snapshot.AuctionEndTime, time.Now()))
	fmt.Fprintf(w, "highest bid:      %s\n", formatHighestBid(snapshot.HighestBid))
	fmt.Fprintf(w, "pending refund:   %s\n", pending)
	fmt.Fprintf(w, "contract balance: %s\n", contractBalance)
}

func printAccounts(w io.Writer, accounts []common.Address) {
	for i, account := range accounts {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, account.Hex())
	}
}

func printError(w io.Writer, record models.ErrorRecord) {
	fmt.Fprintf(w, "error (%s, %s): %s\n", record.Kind, humanize.Time(record.At), record.Message)
}
