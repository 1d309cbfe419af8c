package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/common"

	log "github.com/sirupsen/logrus"
)

// DeploymentRegistry finds the auction contract for a network.
type DeploymentRegistry interface {
	Resolve(networkID string) (models.Deployment, error)
}

type artifact struct {
	ABI      json.RawMessage `json:"abi"`
	Networks map[string]struct {
		Address string `json:"address"`
	} `json:"networks"`
}

// ArtifactRegistry resolves deployments from a compiled contract artifact
// carrying the ABI and a per-network address table.
type ArtifactRegistry struct {
	abi       string
	addresses map[string]common.Address
}

var _ DeploymentRegistry = &ArtifactRegistry{}

func (r *ArtifactRegistry) Resolve(networkID string) (models.Deployment, error) {
	address, ok := r.addresses[networkID]
	if !ok {
		return models.Deployment{}, models.NewDeploymentNotFoundError(networkID)
	}
	return models.Deployment{NetworkID: networkID, Address: address, ABI: r.abi}, nil
}

func LoadArtifactRegistry(path string) (*ArtifactRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewConnectionError("load artifact", err)
	}
	return ParseArtifactRegistry(data)
}

func ParseArtifactRegistry(data []byte) (*ArtifactRegistry, error) {
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, models.NewConnectionError("parse artifact", err)
	}
	if len(a.ABI) == 0 {
		return nil, models.NewConnectionError("parse artifact", fmt.Errorf("artifact has no abi"))
	}
	if _, err := ParseAuctionABI(string(a.ABI)); err != nil {
		return nil, models.NewConnectionError("parse artifact", err)
	}

	addresses := make(map[string]common.Address, len(a.Networks))
	for id, network := range a.Networks {
		if !common.IsHexAddress(network.Address) {
			log.Warnln("[ETH]", "Ignoring invalid address for network", id, network.Address)
			continue
		}
		addresses[id] = common.HexToAddress(network.Address)
	}

	log.Debugln("[ETH]", "Loaded artifact with", len(addresses), "deployments")
	return &ArtifactRegistry{abi: string(a.ABI), addresses: addresses}, nil
}

// StaticRegistry maps network ids to addresses and uses the embedded ABI.
type StaticRegistry struct {
	addresses map[string]common.Address
}

var _ DeploymentRegistry = &StaticRegistry{}

func NewStaticRegistry(deployments map[string]string) (*StaticRegistry, error) {
	addresses := make(map[string]common.Address, len(deployments))
	for id, address := range deployments {
		address = strings.TrimSpace(address)
		if !common.IsHexAddress(address) {
			return nil, models.NewConnectionError("static deployments", fmt.Errorf("invalid address for network %s: %q", id, address))
		}
		addresses[id] = common.HexToAddress(address)
	}
	return &StaticRegistry{addresses: addresses}, nil
}

func (r *StaticRegistry) Resolve(networkID string) (models.Deployment, error) {
	address, ok := r.addresses[networkID]
	if !ok {
		return models.Deployment{}, models.NewDeploymentNotFoundError(networkID)
	}
	return models.Deployment{NetworkID: networkID, Address: address, ABI: AuctionABI}, nil
}

// CombinedRegistry tries each registry in order and returns the first match.
type CombinedRegistry []DeploymentRegistry

func (r CombinedRegistry) Resolve(networkID string) (models.Deployment, error) {
	for _, registry := range r {
		deployment, err := registry.Resolve(networkID)
		if err == nil {
			return deployment, nil
		}
		if !models.IsKind(err, models.KindDeploymentNotFound) {
			return models.Deployment{}, err
		}
	}
	return models.Deployment{}, models.NewDeploymentNotFoundError(networkID)
}
