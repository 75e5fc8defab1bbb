package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/api/proto"
)

var namespaceCmd = &cobra.Command{
	Use:   "namespace",
	Short: "Manage namespaces within a subsystem",
}

func init() {
	namespaceCmd.AddCommand(
		namespaceAddCmd,
		namespaceDelCmd,
		namespaceResizeCmd,
		namespaceChangeLBGroupCmd,
		namespaceAddHostCmd,
		namespaceDelHostCmd,
	)

	namespaceAddCmd.Flags().Uint32("nsid", 0, "namespace id (lowest free if omitted)")
	namespaceAddCmd.Flags().String("pool", "", "image pool (required)")
	namespaceAddCmd.Flags().String("image", "", "image name (required)")
	namespaceAddCmd.Flags().Uint64("size", 0, "size in bytes")
	namespaceAddCmd.Flags().String("uuid", "", "namespace UUID")
	namespaceAddCmd.Flags().Int32("lb-group", 0, "load-balancing group")
	namespaceAddCmd.Flags().Bool("auto-visible", true, "visible to every host allowed on the subsystem")
	namespaceAddCmd.Flags().Uint32("block-size", 512, "block size in bytes")
}

var namespaceAddCmd = &cobra.Command{
	Use:   "add <nqn>",
	Short: "Add a namespace to a subsystem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, _ := cmd.Flags().GetString("pool")
		image, _ := cmd.Flags().GetString("image")
		if pool == "" || image == "" {
			return usageErrorf("--pool and --image are required")
		}
		nsid, _ := cmd.Flags().GetUint32("nsid")
		size, _ := cmd.Flags().GetUint64("size")
		uuid, _ := cmd.Flags().GetString("uuid")
		lbGroup, _ := cmd.Flags().GetInt32("lb-group")
		autoVisible, _ := cmd.Flags().GetBool("auto-visible")
		blockSize, _ := cmd.Flags().GetUint32("block-size")

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.NamespaceAdd(ctx, &proto.NamespaceAddRequest{
			Nqn:         args[0],
			Nsid:        nsid,
			Pool:        pool,
			Image:       image,
			Size:        size,
			Uuid:        uuid,
			LbGroup:     lbGroup,
			AutoVisible: autoVisible,
			BlockSize:   blockSize,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s nsid=%d\n", statusLine(resp.Status), resp.Nsid)
		return nil
	},
}

var namespaceDelCmd = &cobra.Command{
	Use:   "del <nqn> <nsid>",
	Short: "Delete a namespace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nsid, err := parseNSID(args[1])
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

		resp, err := client.NamespaceDel(ctx, &proto.NamespaceDelRequest{Nqn: args[0], Nsid: nsid})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var namespaceResizeCmd = &cobra.Command{
	Use:   "resize <nqn> <nsid> <new-size>",
	Short: "Resize a namespace",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nsid, err := parseNSID(args[1])
		if err != nil {
			return err
		}
		newSize, err := parseUint64(args[2])
		if err != nil {
			return usageErrorf("invalid new-size %q: %w", args[2], err)
		}

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.NamespaceResize(ctx, &proto.NamespaceResizeRequest{Nqn: args[0], Nsid: nsid, NewSize: newSize})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var namespaceChangeLBGroupCmd = &cobra.Command{
	Use:   "change-lb-group <nqn> <nsid> <group>",
	Short: "Move a namespace to a different load-balancing group",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nsid, err := parseNSID(args[1])
		if err != nil {
			return err
		}
		group, err := parseInt32(args[2])
		if err != nil {
			return usageErrorf("invalid group %q: %w", args[2], err)
		}

		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.NamespaceChangeLoadBalancingGroup(ctx, &proto.NamespaceChangeLoadBalancingGroupRequest{
			Nqn: args[0], Nsid: nsid, Group: group,
		})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var namespaceAddHostCmd = &cobra.Command{
	Use:   "add-host <nqn> <nsid> <host-nqn>",
	Short: "Make a namespace visible to a specific host",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nsid, err := parseNSID(args[1])
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

		resp, err := client.NamespaceAddHost(ctx, &proto.NamespaceAddHostRequest{Nqn: args[0], Nsid: nsid, HostNqn: args[2]})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}

var namespaceDelHostCmd = &cobra.Command{
	Use:   "del-host <nqn> <nsid> <host-nqn>",
	Short: "Remove a host from a namespace's visibility set",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nsid, err := parseNSID(args[1])
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

		resp, err := client.NamespaceDelHost(ctx, &proto.NamespaceDelHostRequest{Nqn: args[0], Nsid: nsid, HostNqn: args[2]})
		if err != nil {
			return err
		}
		fmt.Println(statusLine(resp.Status))
		return nil
	},
}
