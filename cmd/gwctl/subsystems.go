package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvmeof/gateway/api/proto"
)

var getSubsystemsCmd = &cobra.Command{
	Use:   "get-subsystems",
	Short: "List every subsystem, namespace, and listener known to this gateway",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.GetSubsystems(ctx, &proto.GetSubsystemsRequest{})
		if err != nil {
			return err
		}

		for _, sub := range resp.Subsystems {
			fmt.Printf("%s  serial=%s  allow_any_host=%t\n", sub.Nqn, sub.Serial, sub.AllowAnyHost)

			w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
			for _, ns := range sub.Namespaces {
				fmt.Fprintf(w, "  ns\tnsid=%d\tpool=%s\timage=%s\tsize=%d\tlb_group=%d\n",
					ns.Nsid, ns.Pool, ns.Image, ns.Size, ns.LbGroup)
			}
			for _, l := range sub.Listeners {
				fmt.Fprintf(w, "  listener\tgw=%s\t%s://%s:%s\tsecure=%t\n",
					l.GatewayName, l.Transport, l.Traddr, l.Trsvcid, l.Secure)
			}
			w.Flush()
			for _, h := range sub.Hosts {
				fmt.Printf("  host\t%s\n", h)
			}
		}
		return nil
	},
}
