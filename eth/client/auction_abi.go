package client

// AuctionABI is the interface of the simple open auction contract the client
// talks to. Artifacts built from the same source carry an equivalent ABI.
const AuctionABI = `[
	{"inputs":[],"name":"beneficiary","outputs":[{"internalType":"address payable","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"auctionEndTime","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"highest","outputs":[{"internalType":"address","name":"bidder","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"_address","type":"address"}],"name":"getBalance","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getContractAccountBalance","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"bid","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[],"name":"withdraw","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[],"name":"endAuction","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":false,"internalType":"address","name":"bidder","type":"address"},{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"}],"name":"HighestBidIncreased","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"internalType":"address","name":"winner","type":"address"},{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"}],"name":"AuctionEnded","type":"event"}
]`

const (
	MethodBeneficiary               = "beneficiary"
	MethodAuctionEndTime            = "auctionEndTime"
	MethodHighest                   = "highest"
	MethodGetBalance                = "getBalance"
	MethodGetContractAccountBalance = "getContractAccountBalance"
	MethodBid                       = "bid"
	MethodWithdraw                  = "withdraw"
	MethodEndAuction                = "endAuction"
)

var requiredMethods = []string{
	MethodBeneficiary,
	MethodAuctionEndTime,
	MethodHighest,
	MethodGetBalance,
	MethodGetContractAccountBalance,
	MethodBid,
	MethodWithdraw,
	MethodEndAuction,
}
