package app

import (
	"fmt"

	"github.com/dan13ram/auction-client/common"
	log "github.com/sirupsen/logrus"
)

// CreateSigners builds every signer the wallet config describes, in order:
// mnemonic accounts, raw private keys, then Cloud KMS keys.
func CreateSigners() ([]common.Signer, error) {
	config := Config.Wallet
	var signers []common.Signer

	if config.Mnemonic != "" {
		mnemonicSigners, err := common.NewMnemonicSigners(config.Mnemonic, int(config.AccountCount))
		if err != nil {
			return nil, fmt.Errorf("error initializing mnemonic signers: %w", err)
		}
		signers = append(signers, mnemonicSigners...)
		log.Debugf("[SIGNER] Derived %d accounts from mnemonic", len(mnemonicSigners))
	}

	for index, key := range config.PrivateKeys {
		signer, err := common.NewPrivateKeySigner(key)
		if err != nil {
			destroyAll(signers)
			return nil, fmt.Errorf("error initializing private key signer [%d]: %w", index, err)
		}
		signers = append(signers, signer)
	}

	for index, keyName := range config.GcpKmsKeyNames {
		signer, err := common.NewGcpKmsSigner(keyName)
		if err != nil {
			destroyAll(signers)
			return nil, fmt.Errorf("error initializing gcp kms signer [%d]: %w", index, err)
		}
		signers = append(signers, signer)
	}

	if len(signers) == 0 {
		return nil, fmt.Errorf("no signers configured")
	}

	for _, signer := range signers {
		log.Debugf("[SIGNER] Loaded account %s", signer.EthAddress().Hex())
	}
	return signers, nil
}

func destroyAll(signers []common.Signer) {
	for _, signer := range signers {
		signer.Destroy()
	}
}
