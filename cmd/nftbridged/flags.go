package main

import (
	"fmt"

	"github.com/arkade-os/nftbridge/internal/config"
	"github.com/urfave/cli/v2"
)

const (
	configFileFlagName    = "config"
	urlFlagName           = "url"
	tlsCertFlagName       = "tls-cert-path"
	signerKeyFlagName     = "signer-prvkey"
	administratorFlagName = "administrator"
	gatewayFlagName       = "gateway"
	assetFlagName         = "asset"
	nameFlagName          = "name"
	symbolFlagName        = "symbol"
	uriFlagName           = "uri"
	heightFlagName        = "height"
	tokenIdFlagName       = "token-id"
	destChainIdFlagName   = "dest-chain-id"
	recipientFlagName     = "recipient"
	messageFlagName       = "message"
	principalFlagName     = "principal"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  configFileFlagName,
		Usage: "path to a config file, defaults to nftbridged.{yaml,json,toml} in the datadir",
	}
	urlFlag = &cli.StringFlag{
		Name:  urlFlagName,
		Usage: "the address where to reach the bridge in the form host:port",
		Value: fmt.Sprintf("127.0.0.1:%d", config.DefaultPort),
	}
	tlsCertFlag = &cli.StringFlag{
		Name:  tlsCertFlagName,
		Usage: "the bridge TLS certificate, plaintext is used if not set",
	}
	signerKeyFlag = &cli.StringFlag{
		Name:     signerKeyFlagName,
		Usage:    "private key in hex format used to sign requests",
		Required: true,
	}
	administratorFlag = &cli.StringFlag{
		Name:  administratorFlagName,
		Usage: "bridge administrator address, defaults to the signer",
	}
	gatewayFlag = &cli.StringFlag{
		Name:     gatewayFlagName,
		Usage:    "gateway address",
		Required: true,
	}
	assetFlag = &cli.StringFlag{
		Name:     assetFlagName,
		Usage:    "local asset address",
		Required: true,
	}
	nameFlag = &cli.StringFlag{
		Name:  nameFlagName,
		Usage: "token name",
	}
	symbolFlag = &cli.StringFlag{
		Name:  symbolFlagName,
		Usage: "token symbol",
	}
	uriFlag = &cli.StringFlag{
		Name:  uriFlagName,
		Usage: "token metadata uri",
	}
	heightFlag = &cli.Uint64Flag{
		Name:     heightFlagName,
		Usage:    "block height claimed for the issuance",
		Required: true,
	}
	tokenIdFlag = &cli.StringFlag{
		Name:     tokenIdFlagName,
		Usage:    "token id in hex format",
		Required: true,
	}
	destChainIdFlag = &cli.Uint64Flag{
		Name:     destChainIdFlagName,
		Usage:    "destination chain id",
		Required: true,
	}
	recipientFlag = &cli.StringFlag{
		Name:     recipientFlagName,
		Usage:    "20-byte recipient address on the destination chain in hex format",
		Required: true,
	}
	principalFlag = &cli.StringFlag{
		Name:     principalFlagName,
		Usage:    "address of the account the inbound call is relayed for",
		Required: true,
	}
	messageFlag = &cli.StringFlag{
		Name:     messageFlagName,
		Usage:    "cross-chain message in hex format",
		Required: true,
	}
)
