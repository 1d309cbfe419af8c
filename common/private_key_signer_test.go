package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewPrivateKeySigner(t *testing.T) {
	t.Run("Valid Key With Prefix", func(t *testing.T) {
		signer, err := NewPrivateKeySigner(testPrivateKey)
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.EthAddress())
	})

	t.Run("Invalid Key", func(t *testing.T) {
		signer, err := NewPrivateKeySigner("0x1234")
		assert.Error(t, err)
		assert.Nil(t, signer)
	})
}

func TestPrivateKeySigner_EthSign(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKey)
	assert.NoError(t, err)

	hash := crypto.Keccak256([]byte("bid"))
	sig, err := signer.EthSign(hash)
	assert.NoError(t, err)
	assert.Len(t, sig, 65)

	sig[64] -= 27
	pubKey, err := crypto.SigToPub(hash, sig)
	assert.NoError(t, err)
	assert.Equal(t, signer.EthAddress(), crypto.PubkeyToAddress(*pubKey))
}
