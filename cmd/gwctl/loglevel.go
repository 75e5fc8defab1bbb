package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/api/proto"
)

var logLevelCmd = &cobra.Command{
	Use:   "log-level <level>",
	Short: "Set the running gateway's log level (debug|info|warn|error)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := client.LogLevel(ctx, &proto.LogLevelRequest{Level: args[0]})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var spdkLogLevelCmd = &cobra.Command{
	Use:   "spdk-log-level <level>",
	Short: "Set the TGT engine's log level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := client.SpdkLogLevel(ctx, &proto.SpdkLogLevelRequest{Level: args[0]})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}
