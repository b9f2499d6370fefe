package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/tobyvance/glyphgrid/internal/protocol"
	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
)

func TestEncodeDecodePipe(t *testing.T) {
	enc := newEncodeCmd()
	var encoded bytes.Buffer
	enc.SetOut(&encoded)
	enc.SetErr(io.Discard)
	enc.SetArgs([]string{"HELLO GRID"})
	if err := enc.Execute(); err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec := newDecodeCmd()
	var msg, report bytes.Buffer
	dec.SetIn(bytes.NewReader(encoded.Bytes()))
	dec.SetOut(&msg)
	dec.SetErr(&report)
	dec.SetArgs([]string{})
	if err := dec.Execute(); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := strings.TrimSpace(msg.String()); got != "HELLO GRID" {
		t.Fatalf("decoded %q", got)
	}
	if !strings.Contains(report.String(), "corrected=0") {
		t.Fatalf("report = %q", report.String())
	}
}

func TestGridJSONRoundTrip(t *testing.T) {
	g, err := protocol.Encode([]byte("JSON"), protocol.Options{Grid: grid.DefaultConfig()})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data, err := marshalGrid(g)
	if err != nil {
		t.Fatalf("marshalGrid: %v", err)
	}
	back, err := unmarshalGrid(data)
	if err != nil {
		t.Fatalf("unmarshalGrid: %v", err)
	}
	if back.Config != g.Config {
		t.Fatalf("config mismatch: %+v vs %+v", back.Config, g.Config)
	}
	for row := range g.Kinds {
		for col := range g.Kinds[row] {
			if back.Kinds[row][col] != g.Kinds[row][col] {
				t.Fatalf("cell (%d,%d) changed in json round trip", row, col)
			}
		}
	}
}

func TestUnmarshalGridRejectsRaggedRows(t *testing.T) {
	if _, err := unmarshalGrid([]byte(`{"size":21,"marker_size":7,"cells":[["square"]]}`)); err == nil {
		t.Fatalf("expected dimension error")
	}
}

func TestCapacityCommand(t *testing.T) {
	cmd := newCapacityCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--message-len", "40"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("capacity: %v", err)
	}
	if !strings.Contains(out.String(), "343 data cells") {
		t.Fatalf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "smallest grid for 40 bytes") {
		t.Fatalf("output = %q", out.String())
	}
}
