package main

import (
	"context"
	"fmt"
	"time"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/auth"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const timeout = 15 * time.Second

var clientFlags = []cli.Flag{urlFlag, tlsCertFlag}

var clientCommands = cli.Commands{
	{
		Name:   "init",
		Usage:  "Initialize the bridge config",
		Flags:  append([]cli.Flag{signerKeyFlag, gatewayFlag, administratorFlag}, clientFlags...),
		Action: initAction,
	},
	{
		Name:  "issue",
		Usage: "Issue a bridged token for a local asset",
		Flags: append([]cli.Flag{
			signerKeyFlag, assetFlag, nameFlag, symbolFlag, uriFlag, heightFlag,
		}, clientFlags...),
		Action: issueAction,
	},
	{
		Name:  "send-out",
		Usage: "Submit a token transfer to another chain",
		Flags: append([]cli.Flag{
			signerKeyFlag, tokenIdFlag, destChainIdFlag, recipientFlag,
		}, clientFlags...),
		Action: sendOutAction,
	},
	{
		Name:  "inbound",
		Usage: "Deliver a cross-chain message, the signer must be the gateway",
		Flags: append([]cli.Flag{
			signerKeyFlag, principalFlag, assetFlag, messageFlag,
		}, clientFlags...),
		Action: inboundAction,
	},
	{
		Name:   "origin",
		Usage:  "Show the origin record of a token",
		Flags:  append([]cli.Flag{tokenIdFlag}, clientFlags...),
		Action: originAction,
	},
	{
		Name:   "config",
		Usage:  "Show the bridge config",
		Flags:  clientFlags,
		Action: configAction,
	},
}

func initAction(c *cli.Context) error {
	client, closeFn, err := newClient(c, true)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	resp, err := client.Initialize(ctx, &bridgev1.InitializeRequest{
		Administrator:  c.String(administratorFlagName),
		GatewayAddress: c.String(gatewayFlagName),
	})
	if err != nil {
		return withDetails(err)
	}
	return printJSON(resp)
}

func issueAction(c *cli.Context) error {
	client, closeFn, err := newClient(c, true)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	resp, err := client.Issue(ctx, &bridgev1.IssueRequest{
		AssetAddress:  c.String(assetFlagName),
		Name:          c.String(nameFlagName),
		Symbol:        c.String(symbolFlagName),
		Uri:           c.String(uriFlagName),
		ClaimedHeight: c.Uint64(heightFlagName),
	})
	if err != nil {
		return withDetails(err)
	}
	return printJSON(resp)
}

func sendOutAction(c *cli.Context) error {
	client, closeFn, err := newClient(c, true)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	resp, err := client.SendOut(ctx, &bridgev1.SendOutRequest{
		TokenId:     c.String(tokenIdFlagName),
		DestChainId: c.Uint64(destChainIdFlagName),
		Recipient:   c.String(recipientFlagName),
	})
	if err != nil {
		return withDetails(err)
	}
	return printJSON(resp)
}

func inboundAction(c *cli.Context) error {
	client, closeFn, err := newClient(c, true)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	resp, err := client.OnInbound(ctx, &bridgev1.OnInboundRequest{
		Principal:    c.String(principalFlagName),
		AssetAddress: c.String(assetFlagName),
		Message:      c.String(messageFlagName),
	})
	if err != nil {
		return withDetails(err)
	}
	return printJSON(resp)
}

func originAction(c *cli.Context) error {
	client, closeFn, err := newClient(c, false)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	resp, err := client.GetOrigin(ctx, &bridgev1.GetOriginRequest{
		TokenId: c.String(tokenIdFlagName),
	})
	if err != nil {
		return withDetails(err)
	}
	return printJSON(resp)
}

func configAction(c *cli.Context) error {
	client, closeFn, err := newClient(c, false)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()

	resp, err := client.GetConfig(ctx, &bridgev1.GetConfigRequest{})
	if err != nil {
		return withDetails(err)
	}
	return printJSON(resp)
}

func newClient(c *cli.Context, signed bool) (bridgev1.BridgeServiceClient, func(), error) {
	creds := insecure.NewCredentials()
	if certPath := c.String(tlsCertFlagName); certPath != "" {
		tlsCreds, err := credentials.NewClientTLSFromFile(certPath, "")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load tls cert: %s", err)
		}
		creds = tlsCreds
	}

	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if signed {
		signer, err := auth.NewSignerFromString(c.String(signerKeyFlagName))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid signer key: %s", err)
		}
		opts = append(opts, auth.WithSigner(signer))
	}

	conn, err := grpc.NewClient(c.String(urlFlagName), opts...)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		// nolint:errcheck
		conn.Close()
	}
	return bridgev1.NewBridgeServiceClient(conn), closeFn, nil
}

// withDetails replaces a status error with the structured details the
// bridge attaches to it, if any.
func withDetails(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		if details, ok := detail.(*bridgev1.ErrorDetails); ok {
			return fmt.Errorf(
				"%s (%d): %s", details.GetName(), details.GetCode(), details.GetMessage(),
			)
		}
	}
	return err
}

func printJSON(resp proto.Message) error {
	buf, err := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		EmitUnpopulated: true,
		UseProtoNames:   true,
	}.Marshal(resp)
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
