package main

import (
	"fmt"

	"github.com/nvmeof/gateway/api/proto"
)

// statusLine renders the embedded Status every response carries. The
// RPC's own error return is what drives gwctl's exit code; this is
// just the human-readable confirmation printed on success.
func statusLine(s *proto.Status) string {
	if s == nil || s.Status == 0 {
		return "OK"
	}
	return fmt.Sprintf("status=%d %s", s.Status, s.ErrorMessage)
}
