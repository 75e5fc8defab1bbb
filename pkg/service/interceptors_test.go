package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingUnaryInterceptorPassesThroughSuccess(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/gateway.GatewayAPI/SubsystemAdd"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}

	resp, err := loggingUnaryInterceptor(context.Background(), nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestLoggingUnaryInterceptorPropagatesHandlerError(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/gateway.GatewayAPI/SubsystemAdd"}
	wantErr := status.Error(codes.NotFound, "not found")
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	}

	_, err := loggingUnaryInterceptor(context.Background(), nil, info, handler)
	assert.Equal(t, wantErr, err)
}

func TestRecoverToInternalReturnsInternalStatusWithCorrelationID(t *testing.T) {
	err := recoverToInternal(context.Background(), "boom")
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Contains(t, st.Message(), "correlation_id=")
}
