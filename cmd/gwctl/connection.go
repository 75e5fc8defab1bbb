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

var connectionCmd = &cobra.Command{
	Use:   "connection",
	Short: "Inspect host connections",
}

func init() {
	connectionCmd.AddCommand(connectionListCmd)
}

var connectionListCmd = &cobra.Command{
	Use:   "list <nqn>",
	Short: "List every allowed host and its live connection state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, client, err := dial(serverAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.ConnectionList(ctx, &proto.ConnectionListRequest{Nqn: args[0]})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "HOST\tCONNECTED\tCTRLR-ID\tQPAIRS\tSECURE\tPSK\tDHCHAP")
		for _, c := range resp.Connections {
			fmt.Fprintf(w, "%s\t%t\t%d\t%d\t%t\t%t\t%t\n",
				c.HostNqn, c.Connected, c.ControllerId, c.QpairCount, c.Secure, c.UsePsk, c.UseDhchap)
		}
		return w.Flush()
	},
}
