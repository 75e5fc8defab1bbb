package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/api/proto"
)

var listenerCmd = &cobra.Command{
	Use:   "listener",
	Short: "Manage subsystem listeners",
}

func init() {
	listenerCmd.AddCommand(listenerAddCmd, listenerDelCmd)

	for _, c := range []*cobra.Command{listenerAddCmd, listenerDelCmd} {
		c.Flags().String("gateway-name", "", "owning gateway (required)")
		c.Flags().String("transport", "tcp", "transport type")
		c.Flags().String("adrfam", "ipv4", "address family: ipv4 or ipv6")
		c.Flags().String("traddr", "", "transport address (required)")
		c.Flags().String("trsvcid", "4420", "transport service id (port)")
	}
	listenerAddCmd.Flags().Bool("secure", false, "require a secure channel (PSK/TLS)")
}

func listenerFlags(cmd *cobra.Command) (gatewayName, transport, adrfam, traddr, trsvcid string, err error) {
	gatewayName, _ = cmd.Flags().GetString("gateway-name")
	transport, _ = cmd.Flags().GetString("transport")
	adrfam, _ = cmd.Flags().GetString("adrfam")
	traddr, _ = cmd.Flags().GetString("traddr")
	trsvcid, _ = cmd.Flags().GetString("trsvcid")
	if gatewayName == "" || traddr == "" {
		err = usageErrorf("--gateway-name and --traddr are required")
	}
	return
}

var listenerAddCmd = &cobra.Command{
	Use:   "add <nqn>",
	Short: "Add a listener on the local gateway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gatewayName, transport, adrfam, traddr, trsvcid, err := listenerFlags(cmd)
		if err != nil {
			return err
		}
		secure, _ := cmd.Flags().GetBool("secure")

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.ListenerAdd(ctx, &proto.ListenerAddRequest{
			Nqn: args[0], GatewayName: gatewayName, Transport: transport,
			Adrfam: adrfam, Traddr: traddr, Trsvcid: trsvcid, Secure: secure,
		})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var listenerDelCmd = &cobra.Command{
	Use:   "del <nqn>",
	Short: "Delete a listener",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gatewayName, transport, adrfam, traddr, trsvcid, err := listenerFlags(cmd)
		if err != nil {
			return err
		}

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.ListenerDel(ctx, &proto.ListenerDelRequest{
			Nqn: args[0], GatewayName: gatewayName, Transport: transport,
			Adrfam: adrfam, Traddr: traddr, Trsvcid: trsvcid,
		})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}
