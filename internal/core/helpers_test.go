package core

import (
	"context"
	"sync/atomic"
)

// sampleDocument is the single group and item example used across tests.
const sampleDocument = `{"Groups":[{"UniqueId":"g1","Title":"T","Subtitle":"S","ImagePath":"i","MoreInfoText":"m","MoreInfoUri":"u","Items":[{"UniqueId":"it1","Title":"IT","Subtitle":"IS","ImagePath":"ii","Request":{"ApiUrl":"https://x","Method":"get","Headers":{"Authorization":"Bearer "},"Body":{}}}]}]}`

// stubSource satisfies ports.DocumentSourcePort and counts reads.
type stubSource struct {
	data  []byte
	err   error
	reads atomic.Int32
}

func (s *stubSource) ReadDocument(_ context.Context) ([]byte, error) {
	s.reads.Add(1)
	return s.data, s.err
}

func (s *stubSource) Describe() string { return "stub" }

// stubTokens satisfies ports.AccessTokenPort.
type stubTokens struct {
	token string
	ok    bool
	err   error
}

func (s stubTokens) AccessToken(_ context.Context) (string, bool, error) {
	return s.token, s.ok, s.err
}

// stubSchema satisfies ports.DocumentSchemaPort.
type stubSchema struct {
	err error
}

func (s stubSchema) ValidateDocument(_ []byte) error { return s.err }
