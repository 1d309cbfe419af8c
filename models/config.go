package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	Ethereum            EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	Wallet              WalletConfig              `yaml:"wallet" json:"wallet"`
	Auction             AuctionConfig             `yaml:"auction" json:"auction"`
	Refresh             ServiceConfig             `yaml:"refresh" json:"refresh"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectID          string `yaml:"project_id" json:"project_id"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type EthereumConfig struct {
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID          string `yaml:"chain_id" json:"chain_id"`
}

type WalletConfig struct {
	Mnemonic       string   `yaml:"mnemonic" json:"mnemonic"`
	AccountCount   int64    `yaml:"account_count" json:"account_count"`
	PrivateKeys    []string `yaml:"private_keys" json:"private_keys"`
	GcpKmsKeyNames []string `yaml:"gcp_kms_key_names" json:"gcp_kms_key_names"`
}

type AuctionConfig struct {
	ArtifactPath        string            `yaml:"artifact_path" json:"artifact_path"`
	Deployments         map[string]string `yaml:"deployments" json:"deployments"`
	ActionTimeoutMillis int64             `yaml:"action_timeout_ms" json:"action_timeout_ms"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}
