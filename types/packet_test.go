package types

import (
	"bytes"
	"math"
	"testing"
	"time"
)

func basePacket() Packet {
	return Packet{
		Sequence:           1,
		SourcePort:         "transfer",
		SourceChannel:      "channel-0",
		DestinationPort:    "transfer",
		DestinationChannel: "channel-1",
		Data:               []byte("token"),
		TimeoutHeight:      NewHeight(1, 1000),
		TimeoutTimestamp:   Timestamp(1_700_000_000_000_000_000),
	}
}

func TestPacketCommitment(t *testing.T) {
	base := basePacket().Commitment()
	if !bytes.Equal(base, basePacket().Commitment()) {
		t.Fatal("commitment is not deterministic")
	}

	mutations := []struct {
		name    string
		mutate  func(*Packet)
		changes bool
	}{
		{"timeout timestamp", func(p *Packet) { p.TimeoutTimestamp++ }, true},
		{"timeout height", func(p *Packet) { p.TimeoutHeight.RevisionHeight++ }, true},
		{"timeout revision", func(p *Packet) { p.TimeoutHeight.RevisionNumber++ }, true},
		{"data", func(p *Packet) { p.Data = []byte("tokeN") }, true},
		// The commitment covers only timeout and data; routing fields are
		// bound by the proof path, not the digest.
		{"sequence", func(p *Packet) { p.Sequence++ }, false},
		{"source channel", func(p *Packet) { p.SourceChannel = "channel-9" }, false},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			p := basePacket()
			tt.mutate(&p)
			changed := !bytes.Equal(base, p.Commitment())
			if changed != tt.changes {
				t.Errorf("changed = %v, want %v", changed, tt.changes)
			}
		})
	}
}

func TestTimestampAdd(t *testing.T) {
	ts := Timestamp(100)
	sum, ok := ts.Add(50 * time.Nanosecond)
	if !ok || sum != 150 {
		t.Errorf("Add = (%d, %v), want (150, true)", sum, ok)
	}

	if _, ok := Timestamp(math.MaxUint64 - 10).Add(time.Second); ok {
		t.Error("overflowing add must report failure")
	}
	if _, ok := ts.Add(-time.Second); ok {
		t.Error("negative duration must report failure")
	}
}

func TestTimestampTimeRoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 123456789).UTC()
	ts := TimestampFromTime(now)
	if !ts.Time().Equal(now) {
		t.Errorf("round trip = %v, want %v", ts.Time(), now)
	}
}
