package common

import (
	"crypto/ecdsa"
	"fmt"

	bip39 "github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// Struct Definition
type MnemonicSigner struct {
	index      int
	ethAddress common.Address
	ethPrivKey *ecdsa.PrivateKey
}

var _ Signer = &MnemonicSigner{}

// Constructor Function
func NewMnemonicSigner(mnemonic string, index int) (*MnemonicSigner, error) {
	ethPrivKey, err := EthereumPrivateKeyFromMnemonic(mnemonic, index)
	if err != nil {
		return nil, fmt.Errorf("failed to create ethereum private key: %w", err)
	}

	publicKeyECDSA, _ := ethPrivKey.Public().(*ecdsa.PublicKey) // impossible to get an error since the private key is not nil

	return &MnemonicSigner{
		index:      index,
		ethPrivKey: ethPrivKey,
		ethAddress: crypto.PubkeyToAddress(*publicKeyECDSA),
	}, nil
}

// NewMnemonicSigners derives the first count accounts of the mnemonic.
func NewMnemonicSigners(mnemonic string, count int) ([]Signer, error) {
	if count <= 0 {
		count = DefaultAccountSize
	}
	signers := make([]Signer, 0, count)
	for i := 0; i < count; i++ {
		signer, err := NewMnemonicSigner(mnemonic, i)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

func EthereumPrivateKeyFromMnemonic(mnemonic string, index int) (*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet from mnemonic: %w", err)
	}

	path, err := hdwallet.ParseDerivationPath(fmt.Sprintf(DefaultETHHDPath, index))
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	return wallet.PrivateKey(account)
}

// Destructor Function
func (s *MnemonicSigner) Destroy() {
	// nothing to do
}

// Method Implementations
func (s *MnemonicSigner) EthSign(data []byte) ([]byte, error) {
	return signWithKey(data, s.ethPrivKey)
}

func (s *MnemonicSigner) EthAddress() common.Address {
	return s.ethAddress
}

func (s *MnemonicSigner) Index() int {
	return s.index
}

func signWithKey(data []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	digest := data
	if len(digest) != 32 {
		digest = crypto.Keccak256(data)
	}
	hash := common.BytesToHash(digest)
	signature, err := crypto.Sign(hash[:], key)
	if err != nil {
		return nil, err
	}

	if signature[64] == 0 || signature[64] == 1 {
		signature[64] += 27
	}

	return signature, nil
}
