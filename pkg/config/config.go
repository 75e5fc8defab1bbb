// Package config loads the gateway's INI configuration file and
// watches it for log-level changes, the way a long-running daemon
// needs to without a restart.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nvmeof/gateway/pkg/log"
)

// clusterSecretEnvVar is the .env key the credential cipher's key is
// derived from (pkg/creds.DeriveClusterSecret), kept out of the INI
// file so it is never written alongside the rest of the config.
const clusterSecretEnvVar = "GATEWAY_CLUSTER_SECRET"

// ClusterSecretFromEnv reads the cluster encryption secret loaded by
// Load's godotenv call. Callers should read it after Load so .env has
// already been applied to the process environment.
func ClusterSecretFromEnv() string {
	return os.Getenv(clusterSecretEnvVar)
}

// Gateway holds [gateway] section options.
type Gateway struct {
	Name                    string
	Group                   string
	Addr                    string
	Port                    int
	EnableAuth              bool
	EnablePrometheusExporter bool
	PrometheusPort          int
	LogLevel                log.Level
}

// Ceph holds [ceph] section options: the cluster object store this
// gateway reaches namespace images and the state map object through.
type Ceph struct {
	Pool       string
	ConfigFile string
}

// MTLS holds [mtls] section options for the gRPC server/client pair.
type MTLS struct {
	ServerKey  string
	ClientKey  string
	ServerCert string
	ClientCert string
}

// SPDK holds [spdk] section options for the TGT adapter.
type SPDK struct {
	RPCSocket            string
	Timeout              int
	LogLevel             string
	ConnRetries           int
	TgtCmdExtraArgs       string
	Transports            string
	TransportTCPOptions   string
}

// Discovery holds [discovery] section options.
type Discovery struct {
	Addr string
	Port int
}

// Config is the fully parsed configuration file.
type Config struct {
	Gateway   Gateway
	Ceph      Ceph
	MTLS      MTLS
	SPDK      SPDK
	Discovery Discovery
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway.name", "")
	v.SetDefault("gateway.group", "default")
	v.SetDefault("gateway.addr", "0.0.0.0")
	v.SetDefault("gateway.port", 5500)
	v.SetDefault("gateway.enable_auth", false)
	v.SetDefault("gateway.enable_prometheus_exporter", true)
	v.SetDefault("gateway.prometheus_port", 10008)
	v.SetDefault("gateway.log_level", "info")

	v.SetDefault("ceph.pool", "rbd")
	v.SetDefault("ceph.config_file", "/etc/ceph/ceph.conf")

	v.SetDefault("spdk.rpc_socket", "/var/tmp/spdk.sock")
	v.SetDefault("spdk.timeout", 60)
	v.SetDefault("spdk.log_level", "WARNING")
	v.SetDefault("spdk.conn_retries", 3)
	v.SetDefault("spdk.tgt_cmd_extra_args", "")
	v.SetDefault("spdk.transports", "tcp")
	v.SetDefault("spdk.transport_tcp_options", "")

	v.SetDefault("discovery.addr", "0.0.0.0")
	v.SetDefault("discovery.port", 8009)
}

// Load reads path (an INI file) into a Config, after loading an
// optional .env carrying the cluster secret used to derive the
// credential-encryption key (see pkg/creds) so it never has to live
// in the INI file itself.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := parse(v)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(v *viper.Viper) *Config {
	return &Config{
		Gateway: Gateway{
			Name:                     v.GetString("gateway.name"),
			Group:                    v.GetString("gateway.group"),
			Addr:                     v.GetString("gateway.addr"),
			Port:                     v.GetInt("gateway.port"),
			EnableAuth:               v.GetBool("gateway.enable_auth"),
			EnablePrometheusExporter: v.GetBool("gateway.enable_prometheus_exporter"),
			PrometheusPort:           v.GetInt("gateway.prometheus_port"),
			LogLevel:                 log.Level(strings.ToLower(v.GetString("gateway.log_level"))),
		},
		Ceph: Ceph{
			Pool:       v.GetString("ceph.pool"),
			ConfigFile: v.GetString("ceph.config_file"),
		},
		MTLS: MTLS{
			ServerKey:  v.GetString("mtls.server_key"),
			ClientKey:  v.GetString("mtls.client_key"),
			ServerCert: v.GetString("mtls.server_cert"),
			ClientCert: v.GetString("mtls.client_cert"),
		},
		SPDK: SPDK{
			RPCSocket:           v.GetString("spdk.rpc_socket"),
			Timeout:             v.GetInt("spdk.timeout"),
			LogLevel:            v.GetString("spdk.log_level"),
			ConnRetries:         v.GetInt("spdk.conn_retries"),
			TgtCmdExtraArgs:     v.GetString("spdk.tgt_cmd_extra_args"),
			Transports:          v.GetString("spdk.transports"),
			TransportTCPOptions: v.GetString("spdk.transport_tcp_options"),
		},
		Discovery: Discovery{
			Addr: v.GetString("discovery.addr"),
			Port: v.GetInt("discovery.port"),
		},
	}
}

func validate(cfg *Config) error {
	if cfg.Gateway.Name == "" {
		return fmt.Errorf("config: gateway.name is required")
	}
	if cfg.SPDK.RPCSocket == "" {
		return fmt.Errorf("config: spdk.rpc_socket is required")
	}
	if cfg.Ceph.Pool == "" {
		return fmt.Errorf("config: ceph.pool is required")
	}
	return nil
}

// WatchLogLevel installs an fsnotify watch on path and invokes onChange
// with the freshly parsed gateway and spdk log levels whenever the
// file is rewritten. It never returns an error for a benign no-op
// rewrite; only setup failures are reported.
func WatchLogLevel(path string, onChange func(gatewayLevel log.Level, spdkLevel string)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watching %s: %w", path, err)
	}

	go func() {
		for event := range watcher.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			v := viper.New()
			v.SetConfigFile(path)
			v.SetConfigType("ini")
			setDefaults(v)
			if err := v.ReadInConfig(); err != nil {
				continue
			}
			onChange(log.Level(strings.ToLower(v.GetString("gateway.log_level"))), v.GetString("spdk.log_level"))
		}
	}()

	return watcher, nil
}
