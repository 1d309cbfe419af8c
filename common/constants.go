package common

const (
	AddressLength      = 20
	DefaultETHHDPath   = "m/44'/60'/0'/0/%d"
	DefaultAccountSize = 1
	ZeroAddress        = "0x0000000000000000000000000000000000000000"
)

// DefaultActionTimeoutMillis bounds submit plus confirmation of one action.
const DefaultActionTimeoutMillis = 120000
