package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/nvmeof/gateway/api/proto"
)

// dial connects to the gateway's gRPC address, using mTLS when a
// client cert/key pair was given on the command line and falling
// back to an insecure channel otherwise. This mirrors [mtls] in the
// gatewayd config file without requiring gwctl to parse that file
// itself; operators point the two at matching cert paths.
func dial(addr string) (*grpc.ClientConn, proto.GatewayAPIClient, error) {
	creds, err := transportCreds()
	if err != nil {
		return nil, nil, err
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return conn, proto.NewGatewayAPIClient(conn), nil
}

func transportCreds() (credentials.TransportCredentials, error) {
	if mtlsCert == "" && mtlsKey == "" {
		return insecure.NewCredentials(), nil
	}
	if mtlsCert == "" || mtlsKey == "" {
		return nil, usageErrorf("--client-cert and --client-key must be given together")
	}

	cert, err := tls.LoadX509KeyPair(mtlsCert, mtlsKey)
	if err != nil {
		return nil, fmt.Errorf("loading client certificate: %w", err)
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS13,
	}

	if mtlsCA != "" {
		caBytes, err := os.ReadFile(mtlsCA)
		if err != nil {
			return nil, fmt.Errorf("reading CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caBytes) {
			return nil, usageErrorf("no certificates found in %s", mtlsCA)
		}
		tlsConfig.RootCAs = pool
	}

	return credentials.NewTLS(tlsConfig), nil
}
