package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dan13ram/auction-client/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Prints the address behind a GCP KMS key so it can be funded and listed in
// wallet.gcp_kms_key_names, then checks that a signature recovers to it.
func main() {
	GoogleKeyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", GoogleKeyName)
	if GoogleKeyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	signer, err := common.NewGcpKmsSigner(GoogleKeyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Eth Address: ", signer.EthAddress().Hex())

	data := []byte("auction-client kms check")
	signature, err := signer.EthSign(data)
	if err != nil {
		log.Fatalf("failed to sign: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	pubKey, err := crypto.SigToPub(crypto.Keccak256(data), signature)
	if err != nil {
		log.Fatalf("failed to recover signer: %v", err)
	}
	recovered := crypto.PubkeyToAddress(*pubKey)
	if recovered != signer.EthAddress() {
		log.Fatalf("signature recovers to %s, expected %s", recovered.Hex(), signer.EthAddress().Hex())
	}
	fmt.Println("Signature recovers to the key's address")
}
