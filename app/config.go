package app

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/auction-client/common"
	"github.com/dan13ram/auction-client/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debugf("[CONFIG] Reading config file %s", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	log.Debugf("[CONFIG] Config loaded from %s", configFile)
	return true
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	// ethereum
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.RPCTimeoutMillis == 0 {
		log.Fatal("[CONFIG] Ethereum.RPCTimeoutMillis is required")
	}

	// wallet
	if Config.Wallet.Mnemonic == "" && len(Config.Wallet.PrivateKeys) == 0 && len(Config.Wallet.GcpKmsKeyNames) == 0 {
		log.Fatal("[CONFIG] One of Wallet.Mnemonic, Wallet.PrivateKeys or Wallet.GcpKmsKeyNames is required")
	}
	if Config.Wallet.AccountCount < 0 {
		log.Fatal("[CONFIG] Wallet.AccountCount must not be negative")
	}
	if Config.Wallet.Mnemonic != "" && Config.Wallet.AccountCount == 0 {
		log.Warnf("[CONFIG] Wallet.AccountCount not set, deriving %d account", common.DefaultAccountSize)
		Config.Wallet.AccountCount = common.DefaultAccountSize
	}
	for i, key := range Config.Wallet.PrivateKeys {
		if strings.TrimSpace(key) == "" {
			log.Fatalf("[CONFIG] Wallet.PrivateKeys[%d] is empty", i)
		}
	}

	// auction
	if Config.Auction.ArtifactPath == "" && len(Config.Auction.Deployments) == 0 {
		log.Fatal("[CONFIG] Auction.ArtifactPath or Auction.Deployments is required")
	}
	if Config.Auction.ActionTimeoutMillis < 0 {
		log.Fatal("[CONFIG] Auction.ActionTimeoutMillis must not be negative")
	}
	if Config.Auction.ActionTimeoutMillis == 0 {
		log.Warnf("[CONFIG] Auction.ActionTimeoutMillis not set, using %d", common.DefaultActionTimeoutMillis)
		Config.Auction.ActionTimeoutMillis = common.DefaultActionTimeoutMillis
	}

	// refresh
	if Config.Refresh.Enabled && Config.Refresh.IntervalMillis == 0 {
		log.Fatal("[CONFIG] Refresh.IntervalMillis is required when refresh is enabled")
	}

	log.Debug("[CONFIG] Config validated")
}
