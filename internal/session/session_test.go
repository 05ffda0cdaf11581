package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnuv/shopfront/pkg/domain"
)

type memKV struct {
	m       map[string]string
	readErr error
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(key string) (string, bool, error) {
	if k.readErr != nil {
		return "", false, k.readErr
	}
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Set(key, value string) error {
	k.m[key] = value
	return nil
}

func (k *memKV) Delete(key string) error {
	delete(k.m, key)
	return nil
}

func TestPairLifecycle(t *testing.T) {
	kv := newMemKV()
	s := New(kv, nil)

	assert.False(t, s.LoggedIn())

	require.NoError(t, s.SetPair(domain.TokenPair{Access: "acc", Refresh: "ref"}))
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "acc", s.Access())
	assert.Equal(t, "ref", s.Refresh())

	require.NoError(t, s.SetAccess("acc-2"))
	assert.Equal(t, "acc-2", s.Access())
	assert.Equal(t, "ref", s.Refresh(), "rotating access must not touch refresh")

	s.Clear()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Refresh())
}

func TestReadFailureDegradesToLoggedOut(t *testing.T) {
	kv := newMemKV()
	kv.m[keyAccess] = "acc"
	kv.readErr = errors.New("disk gone")
	s := New(kv, nil)

	assert.Empty(t, s.Access())
	assert.False(t, s.LoggedIn())
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(5 * time.Minute).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "42",
	})
	signed, err := tok.SignedString([]byte("unit-test-key"))
	require.NoError(t, err)

	kv := newMemKV()
	s := New(kv, nil)
	require.NoError(t, s.SetAccess(signed))

	got, ok := s.ExpiresAt()
	assert.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestExpiresAtMalformedToken(t *testing.T) {
	kv := newMemKV()
	s := New(kv, nil)
	require.NoError(t, s.SetAccess("not-a-jwt"))

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
}

func TestExpiresAtNoToken(t *testing.T) {
	s := New(newMemKV(), nil)

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
}
