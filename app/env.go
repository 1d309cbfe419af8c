package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func splitList(value string) []string {
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// ethereum
	if os.Getenv("ETH_RPC_URL") != "" {
		Config.Ethereum.RPCURL = os.Getenv("ETH_RPC_URL")
	}
	if os.Getenv("ETH_CHAIN_ID") != "" {
		Config.Ethereum.ChainID = os.Getenv("ETH_CHAIN_ID")
	}
	if os.Getenv("ETH_RPC_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("ETH_RPC_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ETH_RPC_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Ethereum.RPCTimeoutMillis = timeoutMillis
		}
	}

	// wallet
	if os.Getenv("ETH_MNEMONIC") != "" {
		Config.Wallet.Mnemonic = os.Getenv("ETH_MNEMONIC")
	}
	if os.Getenv("ETH_ACCOUNT_COUNT") != "" {
		count, err := strconv.ParseInt(os.Getenv("ETH_ACCOUNT_COUNT"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ETH_ACCOUNT_COUNT: ", err.Error())
		} else {
			Config.Wallet.AccountCount = count
		}
	}
	if os.Getenv("ETH_PRIVATE_KEYS") != "" {
		Config.Wallet.PrivateKeys = splitList(os.Getenv("ETH_PRIVATE_KEYS"))
	}
	if os.Getenv("GCP_KMS_KEY_NAMES") != "" {
		Config.Wallet.GcpKmsKeyNames = splitList(os.Getenv("GCP_KMS_KEY_NAMES"))
	}

	// auction
	if os.Getenv("AUCTION_ARTIFACT_PATH") != "" {
		Config.Auction.ArtifactPath = os.Getenv("AUCTION_ARTIFACT_PATH")
	}
	if os.Getenv("AUCTION_ADDRESS") != "" {
		if Config.Ethereum.ChainID == "" {
			log.Warn("[ENV] AUCTION_ADDRESS is ignored without ETH_CHAIN_ID")
		} else {
			if Config.Auction.Deployments == nil {
				Config.Auction.Deployments = map[string]string{}
			}
			Config.Auction.Deployments[Config.Ethereum.ChainID] = os.Getenv("AUCTION_ADDRESS")
		}
	}
	if os.Getenv("AUCTION_ACTION_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("AUCTION_ACTION_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing AUCTION_ACTION_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Auction.ActionTimeoutMillis = timeoutMillis
		}
	}

	// refresh
	if os.Getenv("REFRESH_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("REFRESH_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing REFRESH_ENABLED: ", err.Error())
		} else {
			Config.Refresh.Enabled = enabled
		}
	}
	if os.Getenv("REFRESH_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("REFRESH_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing REFRESH_INTERVAL_MS: ", err.Error())
		} else {
			Config.Refresh.IntervalMillis = intervalMillis
		}
	}

	// logging
	if os.Getenv("LOG_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOG_LEVEL")
	}

	// google secret manager
	if os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing GOOGLE_SECRET_MANAGER_ENABLED: ", err.Error())
		} else {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if os.Getenv("GOOGLE_MNEMONIC_SECRET_NAME") != "" {
		Config.GoogleSecretManager.MnemonicSecretName = os.Getenv("GOOGLE_MNEMONIC_SECRET_NAME")
	}
}
