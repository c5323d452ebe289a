package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/arkade-os/nftbridge/internal/core/application"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/internal/infrastructure/alertsmanager"
	esploratip "github.com/arkade-os/nftbridge/internal/infrastructure/chaintip/esplora"
	localtip "github.com/arkade-os/nftbridge/internal/infrastructure/chaintip/local"
	"github.com/arkade-os/nftbridge/internal/infrastructure/db"
	watermillgateway "github.com/arkade-os/nftbridge/internal/infrastructure/gateway/watermill"
	localledger "github.com/arkade-os/nftbridge/internal/infrastructure/ledger/local"
	inmemorylivestore "github.com/arkade-os/nftbridge/internal/infrastructure/live-store/inmemory"
	redislivestore "github.com/arkade-os/nftbridge/internal/infrastructure/live-store/redis"
	inboundrelay "github.com/arkade-os/nftbridge/internal/interface/relay"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	supportedDbs = supportedType{
		"badger":   {},
		"sqlite":   {},
		"postgres": {},
	}
	supportedLiveStores = supportedType{
		"inmemory": {},
		"redis":    {},
	}
	supportedChainTips = supportedType{
		"local":   {},
		"esplora": {},
	}
	supportedGateways = supportedType{
		"gochannel": {},
	}
)

type Config struct {
	Datadir  string
	Port     uint32
	NoTLS    bool
	TLSCert  string
	TLSKey   string
	LogLevel int

	DbType       string
	DbDir        string
	DbUrl        string
	DbAutoCreate bool

	LiveStoreType       string
	RedisUrl            string
	RedisTxNumOfRetries int

	ChainTipType       string
	EsploraURL         string
	EsploraPollSeconds int64
	BlockIntervalMs    int64
	StartHeight        uint64
	MaxPassHeight      uint64

	GatewayType          string
	GatewayOutputBuffer  int64
	RelayMaxRedeliveries int

	OtelCollectorEndpoint string
	OtelPushInterval      int64

	AlertManagerURL string

	repo      ports.RepoManager
	liveStore ports.LiveStore
	chainTip  ports.ChainTip
	ledger    *localledger.Ledger
	metadata  ports.MetadataService
	pubsub    *gochannel.GoChannel
	gateway   ports.Gateway
	svc       application.Service
	relay     *inboundrelay.Relay
	alerts    ports.Alerts
}

func (c *Config) String() string {
	clone := *c
	if clone.DbUrl != "" {
		clone.DbUrl = "••••••"
	}
	if clone.RedisUrl != "" {
		clone.RedisUrl = "••••••"
	}
	json, err := json.MarshalIndent(clone, "", "  ")
	if err != nil {
		return fmt.Sprintf("error while marshalling config JSON: %s", err)
	}
	return string(json)
}

var (
	defaultDatadir              = appDataDir("nftbridged")
	DefaultPort                 = 7090
	defaultDbType               = "badger"
	defaultLiveStoreType        = "inmemory"
	defaultRedisTxNumOfRetries  = 10
	defaultChainTipType         = "local"
	defaultEsploraURL           = "https://blockstream.info/api"
	defaultEsploraPollSeconds   = 10
	defaultBlockIntervalMs      = 400
	defaultMaxPassHeight        = int(application.DefaultMaxPassHeight)
	defaultGatewayType          = "gochannel"
	defaultGatewayOutputBuffer  = 64
	defaultRelayMaxRedeliveries = 3
	defaultLogLevel             = 4
	defaultNoTLS                = true
	defaultOtelPushInterval     = 10 // seconds
)

// env returns a list of strings prefixed with `NFTBRIDGED_`.
// This is used as a syntax sugar for defining env vars.
func env(values ...string) []string {
	envs := make([]string, len(values))

	for i, value := range values {
		envs[i] = fmt.Sprintf("NFTBRIDGED_%s", value)
	}
	return envs
}

var (
	Datadir = &cli.StringFlag{
		Usage: "Directory to store data",
		Name:  "datadir", EnvVars: env("DATADIR"),
		Value: defaultDatadir,
	}

	Port = &cli.UintFlag{
		Usage: "Port to listen on",
		Name:  "port", EnvVars: env("PORT"),
		Value: uint(DefaultPort),
	}

	NoTLS = &cli.BoolFlag{
		Usage: "Disable TLS",
		Name:  "no-tls", EnvVars: env("NO_TLS"),
		Value: defaultNoTLS,
	}

	TLSCert = &cli.StringFlag{
		Usage: "Path to the TLS certificate, required unless TLS is disabled",
		Name:  "tls-cert", EnvVars: env("TLS_CERT"),
	}

	TLSKey = &cli.StringFlag{
		Usage: "Path to the TLS private key, required unless TLS is disabled",
		Name:  "tls-key", EnvVars: env("TLS_KEY"),
	}

	LogLevel = &cli.IntFlag{
		Usage: "Logging level (0-6, where 6 is trace)",
		Name:  "log-level", EnvVars: env("LOG_LEVEL"),
		Value: defaultLogLevel,
	}

	DbType = &cli.StringFlag{
		Usage: "Database type (badger, sqlite, postgres)",
		Name:  "db-type", EnvVars: env("DB_TYPE"),
		Value: defaultDbType,
	}

	DbUrl = &cli.StringFlag{
		Usage: "Postgres connection url if NFTBRIDGED_DB_TYPE is set to postgres",
		Name:  "pg-db-url", EnvVars: env("PG_DB_URL"),
	}

	DbAutoCreate = &cli.BoolFlag{
		Usage: "Create the postgres database if it does not exist",
		Name:  "pg-db-autocreate", EnvVars: env("PG_DB_AUTOCREATE"),
	}

	LiveStoreType = &cli.StringFlag{
		Usage: "Live store type (inmemory, redis)",
		Name:  "live-store-type", EnvVars: env("LIVE_STORE_TYPE"),
		Value: defaultLiveStoreType,
	}

	RedisUrl = &cli.StringFlag{
		Usage: "Redis db connection url if NFTBRIDGED_LIVE_STORE_TYPE is set to redis",
		Name:  "redis-url", EnvVars: env("REDIS_URL"),
	}

	RedisTxNumOfRetries = &cli.IntFlag{
		Usage: "Maximum number of retries for Redis write operations in case of conflicts",
		Name:  "redis-num-of-retries", EnvVars: env("REDIS_NUM_OF_RETRIES"),
		Value: defaultRedisTxNumOfRetries,
	}

	ChainTipType = &cli.StringFlag{
		Usage: "Source of the current block height (local, esplora)",
		Name:  "chain-tip-type", EnvVars: env("CHAIN_TIP_TYPE"),
		Value: defaultChainTipType,
	}

	EsploraURL = &cli.StringFlag{
		Usage: "Esplora API URL if NFTBRIDGED_CHAIN_TIP_TYPE is set to esplora",
		Name:  "esplora-url", EnvVars: env("ESPLORA_URL"),
		Value: defaultEsploraURL,
	}

	EsploraPollSeconds = &cli.Int64Flag{
		Usage: "How often the esplora tip height is polled, in seconds",
		Name:  "esplora-poll-interval", EnvVars: env("ESPLORA_POLL_INTERVAL"),
		Value: int64(defaultEsploraPollSeconds),
	}

	BlockIntervalMs = &cli.Int64Flag{
		Usage: "Block interval in milliseconds if NFTBRIDGED_CHAIN_TIP_TYPE is set to local",
		Name:  "block-interval", EnvVars: env("BLOCK_INTERVAL"),
		Value: int64(defaultBlockIntervalMs),
	}

	StartHeight = &cli.Uint64Flag{
		Usage: "Height the local chain tip starts from",
		Name:  "start-height", EnvVars: env("START_HEIGHT"),
	}

	MaxPassHeight = &cli.Uint64Flag{
		Usage: "How many blocks a claimed issuance height may lag behind the tip",
		Name:  "max-pass-height", EnvVars: env("MAX_PASS_HEIGHT"),
		Value: uint64(defaultMaxPassHeight),
	}

	GatewayType = &cli.StringFlag{
		Usage: "Gateway transport type (gochannel)",
		Name:  "gateway-type", EnvVars: env("GATEWAY_TYPE"),
		Value: defaultGatewayType,
	}

	GatewayOutputBuffer = &cli.Int64Flag{
		Usage: "Size of the buffered channel of every gateway subscriber",
		Name:  "gateway-output-buffer", EnvVars: env("GATEWAY_OUTPUT_BUFFER"),
		Value: int64(defaultGatewayOutputBuffer),
	}

	RelayMaxRedeliveries = &cli.IntFlag{
		Usage: "How many times an inbound call failing with an internal error is redelivered",
		Name:  "relay-max-redeliveries", EnvVars: env("RELAY_MAX_REDELIVERIES"),
		Value: defaultRelayMaxRedeliveries,
	}

	OtelCollectorEndpoint = &cli.StringFlag{
		Usage: "OpenTelemetry collector endpoint, telemetry is disabled if empty",
		Name:  "otel-collector-endpoint", EnvVars: env("OTEL_COLLECTOR_ENDPOINT"),
	}

	OtelPushInterval = &cli.Int64Flag{
		Usage: "OpenTelemetry metrics push interval in seconds",
		Name:  "otel-push-interval", EnvVars: env("OTEL_PUSH_INTERVAL"),
		Value: int64(defaultOtelPushInterval),
	}

	AlertManagerURL = &cli.StringFlag{
		Usage: "Prometheus Alertmanager URL, alerts are disabled if empty",
		Name:  "alert-manager-url", EnvVars: env("ALERT_MANAGER_URL"),
	}
)

var Flags = []cli.Flag{
	Datadir,
	Port,
	NoTLS,
	TLSCert,
	TLSKey,
	LogLevel,
	DbType,
	DbUrl,
	DbAutoCreate,
	LiveStoreType,
	RedisUrl,
	RedisTxNumOfRetries,
	ChainTipType,
	EsploraURL,
	EsploraPollSeconds,
	BlockIntervalMs,
	StartHeight,
	MaxPassHeight,
	GatewayType,
	GatewayOutputBuffer,
	RelayMaxRedeliveries,
	OtelCollectorEndpoint,
	OtelPushInterval,
	AlertManagerURL,
}

func LoadConfig(c *cli.Context) (*Config, error) {
	if err := initDatadir(c); err != nil {
		return nil, fmt.Errorf("failed to create datadir: %s", err)
	}

	datadir := c.String(Datadir.Name)
	dbPath := filepath.Join(datadir, "db")

	return &Config{
		Datadir:               datadir,
		Port:                  uint32(c.Uint(Port.Name)),
		NoTLS:                 c.Bool(NoTLS.Name),
		TLSCert:               c.String(TLSCert.Name),
		TLSKey:                c.String(TLSKey.Name),
		LogLevel:              c.Int(LogLevel.Name),
		DbType:                c.String(DbType.Name),
		DbDir:                 dbPath,
		DbUrl:                 c.String(DbUrl.Name),
		DbAutoCreate:          c.Bool(DbAutoCreate.Name),
		LiveStoreType:         c.String(LiveStoreType.Name),
		RedisUrl:              c.String(RedisUrl.Name),
		RedisTxNumOfRetries:   c.Int(RedisTxNumOfRetries.Name),
		ChainTipType:          c.String(ChainTipType.Name),
		EsploraURL:            c.String(EsploraURL.Name),
		EsploraPollSeconds:    c.Int64(EsploraPollSeconds.Name),
		BlockIntervalMs:       c.Int64(BlockIntervalMs.Name),
		StartHeight:           c.Uint64(StartHeight.Name),
		MaxPassHeight:         c.Uint64(MaxPassHeight.Name),
		GatewayType:           c.String(GatewayType.Name),
		GatewayOutputBuffer:   c.Int64(GatewayOutputBuffer.Name),
		RelayMaxRedeliveries:  c.Int(RelayMaxRedeliveries.Name),
		OtelCollectorEndpoint: c.String(OtelCollectorEndpoint.Name),
		OtelPushInterval:      c.Int64(OtelPushInterval.Name),
		AlertManagerURL:       c.String(AlertManagerURL.Name),
	}, nil
}

func initDatadir(c *cli.Context) error {
	datadir := c.String(Datadir.Name)
	return makeDirectoryIfNotExists(datadir)
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

func appDataDir(appName string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + strings.ToLower(appName)
	}
	return filepath.Join(home, "."+strings.ToLower(appName))
}

// Validate checks the config and wires every service in dependency order.
func (c *Config) Validate() error {
	if !supportedDbs.supports(c.DbType) {
		return fmt.Errorf("db type not supported, please select one of: %s", supportedDbs)
	}
	if !supportedLiveStores.supports(c.LiveStoreType) {
		return fmt.Errorf(
			"live store type not supported, please select one of: %s", supportedLiveStores,
		)
	}
	if !supportedChainTips.supports(c.ChainTipType) {
		return fmt.Errorf(
			"chain tip type not supported, please select one of: %s", supportedChainTips,
		)
	}
	if !supportedGateways.supports(c.GatewayType) {
		return fmt.Errorf("gateway type not supported, please select one of: %s", supportedGateways)
	}
	if c.DbType == "postgres" && c.DbUrl == "" {
		return fmt.Errorf("missing postgres db url")
	}
	if c.LiveStoreType == "redis" && c.RedisUrl == "" {
		return fmt.Errorf("missing redis url")
	}
	if c.ChainTipType == "esplora" && c.EsploraURL == "" {
		return fmt.Errorf("missing esplora url")
	}
	if c.ChainTipType == "local" && c.BlockIntervalMs <= 0 {
		return fmt.Errorf("block interval must be greater than 0")
	}
	if !c.NoTLS && (c.TLSCert == "" || c.TLSKey == "") {
		return fmt.Errorf("tls cert and key are required when TLS is enabled")
	}
	if c.RelayMaxRedeliveries < 0 {
		return fmt.Errorf("relay max redeliveries must not be negative")
	}

	if err := c.repoManager(); err != nil {
		return err
	}
	if err := c.liveStoreService(); err != nil {
		return err
	}
	if err := c.chainTipService(); err != nil {
		return err
	}
	if err := c.ledgerService(); err != nil {
		return err
	}
	if err := c.gatewayService(); err != nil {
		return err
	}
	if err := c.alertsService(); err != nil {
		return err
	}
	if err := c.appService(); err != nil {
		return err
	}
	if err := c.relayService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) AppService() (application.Service, error) {
	if c.svc == nil {
		if err := c.appService(); err != nil {
			return nil, err
		}
	}
	return c.svc, nil
}

func (c *Config) ChainTip() ports.ChainTip {
	return c.chainTip
}

func (c *Config) Relay() *inboundrelay.Relay {
	return c.relay
}

// PubSub returns the in-process transport shared by the gateway and the relay.
func (c *Config) PubSub() *gochannel.GoChannel {
	return c.pubsub
}

func (c *Config) RepoManager() ports.RepoManager {
	return c.repo
}

func (c *Config) repoManager() error {
	var dataStoreConfig []interface{}

	switch c.DbType {
	case "badger":
		dataStoreConfig = []interface{}{c.DbDir, nil}
	case "sqlite":
		dataStoreConfig = []interface{}{c.DbDir}
	case "postgres":
		dataStoreConfig = []interface{}{c.DbUrl, c.DbAutoCreate}
	default:
		return fmt.Errorf("unknown db type")
	}

	if c.DbType != "postgres" {
		if err := makeDirectoryIfNotExists(c.DbDir); err != nil {
			return err
		}
	}

	svc, err := db.NewService(db.ServiceConfig{
		DataStoreType:   c.DbType,
		DataStoreConfig: dataStoreConfig,
	})
	if err != nil {
		return err
	}

	c.repo = svc
	log.Debugf("opened %s data store", c.DbType)
	return nil
}

func (c *Config) liveStoreService() error {
	if c.liveStore != nil {
		return nil
	}

	switch c.LiveStoreType {
	case "inmemory":
		c.liveStore = inmemorylivestore.NewLiveStore()
	case "redis":
		redisOpts, err := redis.ParseURL(c.RedisUrl)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(redisOpts)
		c.liveStore = redislivestore.NewLiveStore(rdb, c.RedisTxNumOfRetries)
	default:
		return fmt.Errorf("unknown live store type")
	}
	return nil
}

func (c *Config) chainTipService() error {
	if c.chainTip != nil {
		return nil
	}

	var (
		svc ports.ChainTip
		err error
	)
	switch c.ChainTipType {
	case "local":
		svc, err = localtip.NewChainTip(
			c.liveStore.Tip(), time.Duration(c.BlockIntervalMs)*time.Millisecond, c.StartHeight,
		)
	case "esplora":
		svc, err = esploratip.NewChainTip(
			c.EsploraURL, c.liveStore.Tip(),
			esploratip.WithTickerInterval(time.Duration(c.EsploraPollSeconds)*time.Second),
		)
	default:
		err = fmt.Errorf("unknown chain tip type")
	}
	if err != nil {
		return err
	}

	c.chainTip = svc
	log.Debugf("using %s chain tip", c.ChainTipType)
	return nil
}

func (c *Config) ledgerService() error {
	c.ledger = localledger.NewLedger()
	c.metadata = localledger.NewMetadataService()
	return nil
}

func (c *Config) gatewayService() error {
	if c.gateway != nil {
		return nil
	}

	switch c.GatewayType {
	case "gochannel":
		c.pubsub = watermillgateway.NewGoChannelPubSub(c.GatewayOutputBuffer)
	default:
		return fmt.Errorf("unknown gateway type")
	}

	gateway, err := watermillgateway.NewGateway(c.pubsub)
	if err != nil {
		return err
	}
	c.gateway = gateway
	return nil
}

func (c *Config) alertsService() error {
	if c.AlertManagerURL == "" {
		return nil
	}

	alerts, err := alertsmanager.NewService(c.AlertManagerURL)
	if err != nil {
		return err
	}
	c.alerts = alerts
	log.Debugf("alerts will be published to %s", c.AlertManagerURL)
	return nil
}

func (c *Config) appService() error {
	if c.svc != nil {
		return nil
	}

	opts := make([]application.ServiceOption, 0, 1)
	if c.alerts != nil {
		opts = append(opts, application.WithAlerts(c.alerts))
	}

	svc, err := application.NewService(
		c.repo, c.liveStore, c.chainTip, c.ledger, c.metadata, c.gateway, c.MaxPassHeight,
		opts...,
	)
	if err != nil {
		return err
	}

	c.svc = svc
	return nil
}

func (c *Config) relayService() error {
	if c.relay != nil {
		return nil
	}

	opts := make([]inboundrelay.Option, 0, 1)
	if c.alerts != nil {
		opts = append(opts, inboundrelay.WithAlerts(c.alerts))
	}

	relay, err := inboundrelay.NewRelay(c.pubsub, c.svc, c.RelayMaxRedeliveries, opts...)
	if err != nil {
		return err
	}
	c.relay = relay
	return nil
}

type supportedType map[string]struct{}

func (t supportedType) String() string {
	types := make([]string, 0, len(t))
	for tt := range t {
		types = append(types, tt)
	}
	return strings.Join(types, " | ")
}

func (t supportedType) supports(typeStr string) bool {
	_, ok := t[typeStr]
	return ok
}
