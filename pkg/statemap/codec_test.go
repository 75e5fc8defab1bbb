package statemap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvmeof/gateway/pkg/gwtypes"
)

func TestSubsystemRoundTrip(t *testing.T) {
	sub := gwtypes.Subsystem{NQN: "nqn.2016-06.io.spdk:cnode1", Serial: "SPDK1", MaxNamespaces: 32}

	b, err := EncodeSubsystem(sub)
	assert.NoError(t, err)

	got, ok := DecodeSubsystem(Record{Value: b})
	assert.True(t, ok)
	assert.Equal(t, sub, got)
}

func TestNamespaceRoundTrip(t *testing.T) {
	ns := gwtypes.Namespace{
		SubsystemNQN: "nqn.2016-06.io.spdk:cnode1",
		NSID:         1,
		ImagePool:    "rbd",
		ImageName:    "demo_image",
		SizeBytes:    10 << 20,
		LoadBalancingGroup: 2,
	}

	b, err := EncodeNamespace(ns)
	assert.NoError(t, err)

	got, ok := DecodeNamespace(Record{Value: b})
	assert.True(t, ok)
	assert.Equal(t, ns, got)
}

func TestDecodeSubsystemRejectsGarbage(t *testing.T) {
	_, ok := DecodeSubsystem(Record{Value: []byte("not json")})
	assert.False(t, ok)
}

func TestKeyRoundTripNeverCarriesPlaintext(t *testing.T) {
	k := gwtypes.Key{OwnerSubsystemNQN: "nqn.x", HostNQN: "nqn.host", Name: "psk0", Kind: gwtypes.KeyKindPSK}
	ciphertext := []byte{0xde, 0xad, 0xbe, 0xef}

	b, err := EncodeKey(k, ciphertext)
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "plaintext-should-never-appear")

	meta, ct, ok := DecodeKey(Record{Value: b})
	assert.True(t, ok)
	assert.Equal(t, k, meta)
	assert.Equal(t, ciphertext, ct)
}

func TestKeyBuildersProduceStablePrefixes(t *testing.T) {
	assert.Equal(t, "sub/nqn.x", SubsystemKey("nqn.x"))
	assert.Equal(t, "ns/nqn.x/7", NamespaceKey("nqn.x", 7))
	assert.Equal(t, "hst/nqn.x/nqn.host", HostKey("nqn.x", "nqn.host"))
	assert.Equal(t, "key/nqn.x/nqn.host/psk", CredentialKey("nqn.x", "nqn.host", "psk"))
	assert.Equal(t, "gw/gw1", GatewayKey("gw1"))
	assert.Equal(t, "ana/3", ANAKey(3))
}
