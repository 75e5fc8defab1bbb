package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/api/proto"
)

var subsystemCmd = &cobra.Command{
	Use:   "subsystem",
	Short: "Manage NVMe-oF subsystems",
}

func init() {
	subsystemCmd.AddCommand(subsystemAddCmd, subsystemDelCmd)

	subsystemAddCmd.Flags().String("serial", "", "subsystem serial number")
	subsystemAddCmd.Flags().Int32("max-namespaces", 0, "maximum namespace count")
	subsystemAddCmd.Flags().Bool("no-group-append", false, "do not append the load-balancing group to the serial")

	subsystemDelCmd.Flags().Bool("force", false, "delete even if namespaces or hosts remain")
}

var subsystemAddCmd = &cobra.Command{
	Use:   "add <nqn>",
	Short: "Create a subsystem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serial, _ := cmd.Flags().GetString("serial")
		maxNS, _ := cmd.Flags().GetInt32("max-namespaces")
		noGroupAppend, _ := cmd.Flags().GetBool("no-group-append")

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.SubsystemAdd(ctx, &proto.SubsystemAddRequest{
			Nqn:           args[0],
			Serial:        serial,
			MaxNamespaces: maxNS,
			NoGroupAppend: noGroupAppend,
		})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var subsystemDelCmd = &cobra.Command{
	Use:   "del <nqn>",
	Short: "Delete a subsystem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.SubsystemDel(ctx, &proto.SubsystemDelRequest{Nqn: args[0], Force: force})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}
