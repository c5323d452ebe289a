package permissions

import (
	"context"
	"fmt"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	grpchealth "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	EntityBridge  = "bridge"
	EntityRelay   = "relay"
	EntityHealth  = "health"
	EntityOrigins = "origins"
)

type Op struct {
	Entity string
	Action string
}

// Whitelist returns the methods that can be called without a signed request.
func Whitelist() map[string][]Op {
	return map[string][]Op{
		bridgev1.BridgeService_GetOrigin_FullMethodName: {{
			Entity: EntityOrigins,
			Action: "read",
		}},
		bridgev1.BridgeService_GetConfig_FullMethodName: {{
			Entity: EntityBridge,
			Action: "read",
		}},
		fmt.Sprintf("/%s/Check", grpchealth.Health_ServiceDesc.ServiceName): {{
			Entity: EntityHealth,
			Action: "read",
		}},
		fmt.Sprintf("/%s/Watch", grpchealth.Health_ServiceDesc.ServiceName): {{
			Entity: EntityHealth,
			Action: "read",
		}},
		fmt.Sprintf("/%s/List", grpchealth.Health_ServiceDesc.ServiceName): {{
			Entity: EntityHealth,
			Action: "read",
		}},
	}
}

// AllPermissionsByMethod returns the permissions required by every method
// exposed by the server, whitelisted ones included.
func AllPermissionsByMethod() map[string][]Op {
	return mergeMaps(Whitelist(), map[string][]Op{
		bridgev1.BridgeService_Initialize_FullMethodName: {{
			Entity: EntityBridge,
			Action: "write",
		}},
		bridgev1.BridgeService_Issue_FullMethodName: {{
			Entity: EntityOrigins,
			Action: "write",
		}},
		bridgev1.BridgeService_SendOut_FullMethodName: {{
			Entity: EntityRelay,
			Action: "write",
		}},
		bridgev1.BridgeService_OnInbound_FullMethodName: {{
			Entity: EntityRelay,
			Action: "write",
		}},
	})
}

type principalCtxKey struct{}

// WithPrincipal returns a copy of ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal nft.Address) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, principal)
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (nft.Address, bool) {
	principal, ok := ctx.Value(principalCtxKey{}).(nft.Address)
	return principal, ok
}

func mergeMaps(maps ...map[string][]Op) map[string][]Op {
	merged := make(map[string][]Op)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
