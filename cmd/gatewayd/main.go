package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/pkg/config"
	"github.com/nvmeof/gateway/pkg/creds"
	"github.com/nvmeof/gateway/pkg/discovery"
	"github.com/nvmeof/gateway/pkg/events"
	"github.com/nvmeof/gateway/pkg/ha"
	"github.com/nvmeof/gateway/pkg/locks"
	"github.com/nvmeof/gateway/pkg/log"
	"github.com/nvmeof/gateway/pkg/metrics"
	"github.com/nvmeof/gateway/pkg/monitor"
	"github.com/nvmeof/gateway/pkg/reconciler"
	"github.com/nvmeof/gateway/pkg/service"
	"github.com/nvmeof/gateway/pkg/statemap"
	"github.com/nvmeof/gateway/pkg/tgt"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:     "gatewayd",
	Short:   "NVMe-oF gateway control-plane daemon",
	Version: Version,
	RunE:    runDaemon,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gatewayd version %s\nCommit: %s\nBuilt: %s\n", Version, Commit, BuildTime))
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "/etc/ceph/ceph-nvmeof.conf", "path to the gateway INI config file")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log.Init(log.Config{Level: log.Level(cfg.Gateway.LogLevel), JSONOutput: true})
	logger := log.WithGatewayName(cfg.Gateway.Name)
	logger.Info().Msg("starting gatewayd")

	metrics.SetVersion(Version)

	engine, err := tgt.Dial(tgt.Config{
		Socket:      cfg.SPDK.RPCSocket,
		Timeout:     time.Duration(cfg.SPDK.Timeout) * time.Second,
		ConnRetries: cfg.SPDK.ConnRetries,
	})
	if err != nil {
		metrics.RegisterComponent("tgt", false, err.Error())
		return fmt.Errorf("dialing tgt: %w", err)
	}
	defer engine.Close()
	metrics.RegisterComponent("tgt", true, "")

	backend := statemap.NewMemBackend()
	mirrorPath := filepath.Join(os.TempDir(), cfg.Gateway.Name+"-statemap.db")
	store, err := statemap.Open(backend, mirrorPath)
	if err != nil {
		metrics.RegisterComponent("statemap", false, err.Error())
		return fmt.Errorf("opening state map: %w", err)
	}
	defer store.Close()
	metrics.RegisterComponent("statemap", true, "")

	engineLock := locks.NewEngine()
	subsystemLocks := locks.NewSubsystems()

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	clusterSecret := config.ClusterSecretFromEnv()
	cipher, err := creds.NewCipher(creds.DeriveClusterSecret(clusterSecret))
	if err != nil {
		return fmt.Errorf("building credential cipher: %w", err)
	}
	credsMgr := creds.NewManager("/var/tmp", engine, cipher)

	recon := reconciler.New(cfg.Gateway.Name, store, engine, engineLock, subsystemLocks, credsMgr, broker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := recon.StartupReconcile(ctx); err != nil {
		logger.Warn().Err(err).Msg("startup reconcile failed, continuing degraded")
	}

	sub := store.Subscribe(ctx)
	go recon.Run(ctx, sub)

	haMachine := ha.New(cfg.Gateway.Name, engine, engineLock, localSubsystemLister{store: store}, store, broker)

	monitorClient := monitor.New(cfg.Gateway.Name, cfg.Gateway.Group, cfg.Gateway.Addr, noopController{}, haMachine, broker)
	if err := monitorClient.Start(ctx); err != nil {
		logger.Warn().Err(err).Msg("monitor client failed to register, continuing degraded")
	}

	disco := discovery.New(store)
	discoveryAddr := fmt.Sprintf("%s:%d", cfg.Discovery.Addr, cfg.Discovery.Port)
	go func() {
		if err := disco.Serve(ctx, discoveryAddr); err != nil {
			logger.Warn().Err(err).Msg("discovery responder stopped")
		}
	}()

	srv := service.NewServer(cfg.Gateway.Name, store, engine, engineLock, subsystemLocks, credsMgr, broker)
	addr := fmt.Sprintf("%s:%d", cfg.Gateway.Addr, cfg.Gateway.Port)

	metrics.RegisterComponent("api", true, "")
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(addr); err != nil {
			metrics.UpdateComponent("api", false, err.Error())
			errCh <- fmt.Errorf("gateway API server error: %w", err)
		}
	}()

	if cfg.Gateway.EnablePrometheusExporter {
		go serveMetrics(fmt.Sprintf("%s:%d", cfg.Gateway.Addr, cfg.Gateway.PrometheusPort))
	}

	watcher, err := config.WatchLogLevel(configPath, func(gatewayLevel log.Level, spdkLevel string) {
		if err := log.SetLevel(gatewayLevel); err != nil {
			logger.Warn().Err(err).Msg("config hot-reload: invalid gateway log level")
		}
		if err := engine.SetLogLevel(ctx, spdkLevel); err != nil {
			logger.Warn().Err(err).Msg("config hot-reload: failed to set spdk log level")
		}
	})
	if err != nil {
		logger.Warn().Err(err).Msg("log level hot-reload watcher unavailable")
	} else {
		defer watcher.Close()
	}

	logger.Info().Str("addr", addr).Msg("gatewayd running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer shutdownCancel()
	if err := monitorClient.Stop(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("monitor deregister failed; node may be blocklisted")
	}

	srv.Stop()
	cancel()

	logger.Info().Msg("shutdown complete")
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/healthz", metrics.HealthHandler())
	mux.Handle("/readyz", metrics.ReadyHandler())
	mux.Handle("/livez", metrics.LivenessHandler())
	_ = http.ListenAndServe(addr, mux)
}

// noopController stands in for the cluster's ANA/discovery controller
// when a gateway runs standalone, with no object-store side channel to
// register against. Heartbeats and deregistration trivially succeed;
// Notifications returns a channel that is never written to, so the HA
// machine never receives an assignment and keeps its initial, empty
// optimized set.
type noopController struct{}

func (noopController) Register(ctx context.Context, gatewayName, group, nodeIP string) error {
	return nil
}

func (noopController) Heartbeat(ctx context.Context, gatewayName string) error { return nil }

func (noopController) Deregister(ctx context.Context, gatewayName string) error { return nil }

func (noopController) Notifications(ctx context.Context, gatewayName string) (<-chan monitor.Assignment, error) {
	ch := make(chan monitor.Assignment)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// localSubsystemLister answers pkg/ha's SubsystemLister from the
// current state-map snapshot rather than a live TGT query.
type localSubsystemLister struct {
	store *statemap.Store
}

func (l localSubsystemLister) SubsystemNQNs(ctx context.Context) ([]string, error) {
	_, records, err := l.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, r := range records {
		if len(r.Key) > len(statemap.PrefixSubsystem) && r.Key[:len(statemap.PrefixSubsystem)] == statemap.PrefixSubsystem {
			out = append(out, r.Key[len(statemap.PrefixSubsystem):])
		}
	}
	return out, nil
}
