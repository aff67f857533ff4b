package redfish

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/config"
	"github.com/rackhd/redfish-gateway/internal/cache"
	"github.com/rackhd/redfish-gateway/internal/repository/broker"
	"github.com/rackhd/redfish-gateway/internal/repository/racadm"
	"github.com/rackhd/redfish-gateway/internal/repository/sqldb"
	"github.com/rackhd/redfish-gateway/internal/repository/wsman"
	"github.com/rackhd/redfish-gateway/pkg/plugin"
	v1 "github.com/rackhd/redfish-gateway/redfish/internal/controller/http/v1/handler"
	"github.com/rackhd/redfish-gateway/redfish/internal/infrastructure/schema"
	"github.com/rackhd/redfish-gateway/redfish/internal/infrastructure/services"
	sessionstore "github.com/rackhd/redfish-gateway/redfish/internal/infrastructure/sessions"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/fetcher"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/managers"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sel"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sessions"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/systems"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
	"github.com/rackhd/redfish-gateway/redfish/openapi"
)

const (
	sessionCleanup = time.Minute
	oidcTimeout    = 10 * time.Second
)

// component is the wired object graph behind the Redfish routes.
type component struct {
	handlers  v1.Handlers
	auth      gin.HandlerFunc
	publisher *broker.Publisher
}

func newComponent(ctx *plugin.Context) (*component, error) {
	cfg := ctx.Config
	log := ctx.Logger

	validator, err := schema.New(context.Background(), openapi.Spec)
	if err != nil {
		return nil, fmt.Errorf("redfish - schema: %w", err)
	}

	var publisher *broker.Publisher
	if cfg.Broker.URL != "" {
		publisher = broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Login, cfg.Broker.Passcode, cfg.Broker.Destination, log)
	}

	crypto := &security.Crypto{EncryptionKey: cfg.App.EncryptionKey}
	inventory := sqldb.NewNodeRepo(ctx.Database, sqldb.NewObmRepo(ctx.Database, crypto))
	workflows := sqldb.NewWorkflowRepo(ctx.Database, publisherOrNil(publisher))

	f := fetcher.New(inventory, sqldb.NewCatalogRepo(ctx.Database), sqldb.NewPollerRepo(ctx.Database), cache.NewFromConfig(cfg), log)

	registry := vendor.NewRegistry(vendor.Deps{
		Fetcher:      f,
		Translator:   sel.New(f, cfg.Redfish.BasePath),
		Wsman:        wsman.NewLogClient(cfg.Dell.WsmanURL, cfg.Dell.Timeout, log),
		Racadm:       racadm.New(cfg.Dell.RacadmPath, racadm.ExecCommandExecutor{}),
		Lookup:       sqldb.NewLookupRepo(ctx.Database),
		Decrypter:    crypto,
		Log:          log,
		BasePath:     cfg.Redfish.BasePath,
		ManagerID:    cfg.Redfish.ReservedManagerID,
		ShareName:    cfg.NFS.ShareName,
		ShareAddress: southboundAddress(cfg),
		NFSDirectory: cfg.NFS.Directory,
	})

	sessionsUC := sessions.New(sessionstore.NewMemory(sessionCleanup), log, sessions.Options{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		JWTKey:        cfg.Auth.JWTKey,
		Timeout:       cfg.Auth.SessionTimeout,
	})

	auth, err := authenticator(cfg, sessionsUC)
	if err != nil {
		return nil, err
	}

	managersUC := managers.New(inventory, f, services.NewSSDPState(cfg.SSDP.Enabled, log), services.NewHost(), log, managers.Options{
		ReservedID: cfg.Redfish.ReservedManagerID,
		BasePath:   cfg.Redfish.BasePath,
		Northbound: northbound(cfg),
	})

	return &component{
		handlers: v1.Handlers{
			ServiceRoot: v1.CreateServiceRootHandler(v1.ServiceRootOptions{
				BasePath: cfg.Redfish.BasePath,
				UUID:     cfg.Redfish.ServiceUUID,
				StateDir: cfg.Redfish.StateDir,
				OpenAPI:  openapi.Spec,
			}, log),
			Health:   v1.CreateHealthHandler(ctx.Database.Pool, cfg.App.Version, log),
			Systems:  v1.CreateSystemsHandler(systems.New(inventory, registry, workflows, validator, log, cfg.Redfish.BasePath), log),
			Managers: v1.CreateManagersHandler(managersUC, log),
			Sessions: v1.CreateSessionsHandler(sessionsUC, cfg.Redfish.BasePath, log),
		},
		auth:      auth,
		publisher: publisher,
	}, nil
}

// publisherOrNil keeps a nil *broker.Publisher from becoming a non-nil interface.
func publisherOrNil(p *broker.Publisher) sqldb.Publisher {
	if p == nil {
		return nil
	}

	return p
}

func authenticator(cfg *config.Config, sessionsUC *sessions.UseCase) (gin.HandlerFunc, error) {
	if cfg.Auth.Disabled {
		return nil, nil
	}

	opts := v1.AuthOptions{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
		JWTKey:   cfg.Auth.JWTKey,
		Sessions: sessionsUC,
	}

	if cfg.Auth.ClientID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), oidcTimeout)
		defer cancel()

		provider, err := oidc.NewProvider(ctx, cfg.Auth.Issuer)
		if err != nil {
			return nil, fmt.Errorf("redfish - oidc provider %s: %w", cfg.Auth.Issuer, err)
		}

		opts.Verifier = provider.Verifier(&oidc.Config{ClientID: cfg.Auth.ClientID})
	}

	return v1.Authenticate(opts), nil
}

func northbound(cfg *config.Config) []managers.Endpoint {
	eps := cfg.Endpoints(config.RouterNorthbound)
	out := make([]managers.Endpoint, 0, len(eps))

	for _, ep := range eps {
		out = append(out, managers.Endpoint{Port: ep.Port, HTTPS: ep.HTTPSEnabled})
	}

	if len(out) == 0 {
		if port, err := strconv.Atoi(cfg.HTTP.Port); err == nil {
			out = append(out, managers.Endpoint{Port: port, HTTPS: cfg.HTTP.TLS.Enabled})
		}
	}

	return out
}

// southboundAddress is the address managed nodes use to reach the NFS share.
func southboundAddress(cfg *config.Config) string {
	for _, ep := range cfg.Endpoints(config.RouterSouthbound) {
		if ip := net.ParseIP(ep.Address); ip != nil && !ip.IsUnspecified() {
			return ep.Address
		}
	}

	return cfg.HTTP.Host
}
