package app

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(ctx context.Context, client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectID, name),
	}

	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result.Payload.Data)), nil
}

// readKeysFromGSM fills in the wallet mnemonic from Secret Manager when it
// is enabled and no mnemonic was configured locally.
func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.Wallet.Mnemonic != "" {
		log.Debug("[GSM] Mnemonic already configured, skipping")
		return
	}

	if Config.GoogleSecretManager.ProjectID == "" {
		log.Fatalf("[GSM] ProjectID is empty")
	}
	if Config.GoogleSecretManager.MnemonicSecretName == "" {
		log.Fatalf("[GSM] Mnemonic secret name is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	log.Debug("[GSM] Reading wallet mnemonic")
	Config.Wallet.Mnemonic, err = accessSecretVersion(ctx, client, Config.GoogleSecretManager.MnemonicSecretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access wallet mnemonic: %v", err)
	}
	log.Info("[GSM] Successfully read wallet mnemonic")
}
