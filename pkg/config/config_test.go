package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmeof/gateway/pkg/log"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "[gateway]\nname = gw1\n\n[ceph]\npool = rbd\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gw1", cfg.Gateway.Name)
	assert.Equal(t, "default", cfg.Gateway.Group)
	assert.Equal(t, 5500, cfg.Gateway.Port)
	assert.Equal(t, log.Level("info"), cfg.Gateway.LogLevel)
	assert.Equal(t, "/var/tmp/spdk.sock", cfg.SPDK.RPCSocket)
	assert.Equal(t, 3, cfg.SPDK.ConnRetries)
	assert.Equal(t, 8009, cfg.Discovery.Port)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[gateway]
name = gw2
group = group-a
port = 6000
log_level = DEBUG

[ceph]
pool = data

[spdk]
rpc_socket = /tmp/custom.sock
conn_retries = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "group-a", cfg.Gateway.Group)
	assert.Equal(t, 6000, cfg.Gateway.Port)
	assert.Equal(t, log.Level("debug"), cfg.Gateway.LogLevel)
	assert.Equal(t, "/tmp/custom.sock", cfg.SPDK.RPCSocket)
	assert.Equal(t, 10, cfg.SPDK.ConnRetries)
}

func TestLoadFailsWhenGatewayNameMissing(t *testing.T) {
	path := writeConfig(t, "[ceph]\npool = rbd\n")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gateway.name")
}

func TestLoadFailsWhenCephPoolMissing(t *testing.T) {
	path := writeConfig(t, "[gateway]\nname = gw1\n\n[ceph]\npool =\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}

func TestClusterSecretFromEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv("GATEWAY_CLUSTER_SECRET", "super-secret-passphrase")
	assert.Equal(t, "super-secret-passphrase", ClusterSecretFromEnv())
}

func TestWatchLogLevelFiresOnRewrite(t *testing.T) {
	path := writeConfig(t, "[gateway]\nname = gw1\nlog_level = info\n\n[ceph]\npool = rbd\n")

	changed := make(chan log.Level, 1)
	watcher, err := WatchLogLevel(path, func(gatewayLevel log.Level, spdkLevel string) {
		changed <- gatewayLevel
	})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(path, []byte("[gateway]\nname = gw1\nlog_level = debug\n\n[ceph]\npool = rbd\n"), 0644))

	select {
	case level := <-changed:
		assert.Equal(t, log.Level("debug"), level)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never observed the rewrite")
	}
}
