package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestNewMnemonicSigner(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, 0)
	assert.NoError(t, err)
	assert.NotNil(t, signer)

	assert.NotNil(t, signer.ethPrivKey)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.ethAddress)
	assert.Equal(t, 0, signer.Index())
}

func TestNewMnemonicSigner_InvalidMnemonic(t *testing.T) {
	signer, err := NewMnemonicSigner("not a valid mnemonic", 0)
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestNewMnemonicSigners(t *testing.T) {
	t.Run("Derives Ordered Accounts", func(t *testing.T) {
		signers, err := NewMnemonicSigners(testMnemonic, 2)
		assert.NoError(t, err)
		assert.Len(t, signers, 2)

		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signers[0].EthAddress())
		assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), signers[1].EthAddress())
	})

	t.Run("Zero Count Defaults To One", func(t *testing.T) {
		signers, err := NewMnemonicSigners(testMnemonic, 0)
		assert.NoError(t, err)
		assert.Len(t, signers, 1)
	})
}

func TestMnemonicSigner_EthSign(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, 0)
	assert.NoError(t, err)

	data := []byte("test data")
	sig, err := signer.EthSign(data)
	assert.NoError(t, err)
	assert.NotNil(t, sig)

	if sig[64] != 27 && sig[64] != 28 {
		t.Fatalf("invalid Ethereum signature")
	}

	sig[64] -= 27

	hash := crypto.Keccak256(data)
	pubKey, err := crypto.SigToPub(hash, sig)
	assert.NoError(t, err)

	recoveredAddr := crypto.PubkeyToAddress(*pubKey)
	assert.Equal(t, signer.EthAddress(), recoveredAddr)
}

func TestMnemonicSigner_Destroy(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, 0)
	assert.NoError(t, err)

	signer.Destroy()
	// Nothing to assert here since the Destroy method does nothing
}
