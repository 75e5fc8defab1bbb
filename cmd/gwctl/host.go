package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/api/proto"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Manage a subsystem's host access list",
}

func init() {
	hostCmd.AddCommand(hostAddCmd, hostDelCmd)

	hostAddCmd.Flags().String("psk", "", "PSK key material")
	hostAddCmd.Flags().String("dhchap", "", "DHCHAP host key material")
	hostAddCmd.Flags().String("dhchap-ctrlr", "", "DHCHAP controller key material")
}

var hostAddCmd = &cobra.Command{
	Use:   "add <nqn> <host-nqn|*>",
	Short: `Allow a host to connect, or "*" to allow any host`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		psk, _ := cmd.Flags().GetString("psk")
		dhchap, _ := cmd.Flags().GetString("dhchap")
		dhchapCtrlr, _ := cmd.Flags().GetString("dhchap-ctrlr")

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.HostAdd(ctx, &proto.HostAddRequest{
			Nqn: args[0], HostNqn: args[1], Psk: psk, Dhchap: dhchap, DhchapCtrlr: dhchapCtrlr,
		})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var hostDelCmd = &cobra.Command{
	Use:   "del <nqn> <host-nqn>",
	Short: "Revoke a host's access",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.HostDel(ctx, &proto.HostDelRequest{Nqn: args[0], HostNqn: args[1]})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}
