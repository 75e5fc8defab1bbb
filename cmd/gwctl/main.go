// Command gwctl is a thin gRPC client for the gateway administrative
// API: one subcommand per RPC in api/proto/gateway.proto.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes per the CLI contract: 0 success, 1 usage error, 2 server
// error, 3 connection error.
const (
	exitOK         = 0
	exitUsage      = 1
	exitServer     = 2
	exitConnection = 3
)

var (
	serverAddr string
	mtlsCert   string
	mtlsKey    string
	mtlsCA     string
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCodeOf(err)
	}
	return exitOK
}

var rootCmd = &cobra.Command{
	Use:   "gwctl",
	Short: "Administer an NVMe-oF gateway over its gRPC control plane",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "127.0.0.1:5500", "gateway gRPC address")
	rootCmd.PersistentFlags().StringVar(&mtlsCert, "client-cert", "", "client certificate for mTLS (optional)")
	rootCmd.PersistentFlags().StringVar(&mtlsKey, "client-key", "", "client key for mTLS (optional)")
	rootCmd.PersistentFlags().StringVar(&mtlsCA, "ca-cert", "", "CA certificate to verify the server (optional)")

	rootCmd.AddCommand(subsystemCmd)
	rootCmd.AddCommand(namespaceCmd)
	rootCmd.AddCommand(listenerCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(connectionCmd)
	rootCmd.AddCommand(getSubsystemsCmd)
	rootCmd.AddCommand(logLevelCmd)
	rootCmd.AddCommand(spdkLogLevelCmd)
}
