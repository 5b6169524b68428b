package pipeline

import (
	"testing"

	"github.com/chardetect/chardet-core/pkg/registry"
)

func TestBOMStageDeterminism(t *testing.T) {
	tests := []struct {
		name     string
		prefix   []byte
		encoding string
	}{
		{"utf-8-sig", []byte{0xEF, 0xBB, 0xBF}, "utf-8-sig"},
		{"utf-32-le", []byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32-le"},
		{"utf-32-be", []byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32-be"},
		{"utf-16-le", []byte{0xFF, 0xFE}, "utf-16-le"},
		{"utf-16-be", []byte{0xFE, 0xFF}, "utf-16-be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tail := range [][]byte{nil, []byte("hello"), []byte{0x01, 0x02, 0x03}} {
				data := append(append([]byte(nil), tt.prefix...), tail...)
				ctx := NewContext(data, registry.All, nil, nil)
				out := bomStage{}.Run(ctx)
				if out.Kind != Verdict {
					t.Fatalf("expected Verdict, got %v", out.Kind)
				}
				if out.Result.Encoding != tt.encoding {
					t.Fatalf("expected %q, got %q", tt.encoding, out.Result.Encoding)
				}
				if out.Result.Confidence != 1.0 {
					t.Fatalf("expected confidence 1.0, got %v", out.Result.Confidence)
				}
			}
		})
	}
}

func TestBOMStageSkipsWithoutMatch(t *testing.T) {
	ctx := NewContext([]byte("Hello, world!"), registry.All, nil, nil)
	out := bomStage{}.Run(ctx)
	if out.Kind != Skip {
		t.Fatalf("expected Skip, got %v", out.Kind)
	}
}

func TestASCIIStageWindows1252WhenEraAll(t *testing.T) {
	ctx := NewContext([]byte("Hello, world!"), registry.All, nil, nil)
	out := asciiStage{}.Run(ctx)
	if out.Kind != Verdict {
		t.Fatalf("expected Verdict, got %v", out.Kind)
	}
	if out.Result.Encoding != "windows-1252" {
		t.Fatalf("expected windows-1252 under registry.All, got %q", out.Result.Encoding)
	}
	if out.Result.Confidence < 0.95 {
		t.Fatalf("expected confidence >= 0.95, got %v", out.Result.Confidence)
	}
}

func TestASCIIStagePlainAsciiWhenModernWeb(t *testing.T) {
	ctx := NewContext([]byte("Hello, world!"), registry.ModernWeb, nil, nil)
	out := asciiStage{}.Run(ctx)
	if out.Kind != Verdict {
		t.Fatalf("expected Verdict, got %v", out.Kind)
	}
	if out.Result.Encoding != "ascii" {
		t.Fatalf("expected ascii, got %q", out.Result.Encoding)
	}
}

func TestASCIIStageSkipsOnHighBytes(t *testing.T) {
	ctx := NewContext([]byte{0x41, 0x80, 0x42}, registry.All, nil, nil)
	out := asciiStage{}.Run(ctx)
	if out.Kind != Skip {
		t.Fatalf("expected Skip on a non-ASCII byte, got %v", out.Kind)
	}
}

func TestBinaryGuardStageDetectsNullByte(t *testing.T) {
	ctx := NewContext([]byte{0x00, 0x01, 0x02, 0x03}, registry.All, nil, nil)
	out := binaryGuardStage{}.Run(ctx)
	if out.Kind != Verdict {
		t.Fatalf("expected Verdict, got %v", out.Kind)
	}
	if !out.Result.Binary {
		t.Fatalf("expected Binary=true")
	}
	if out.Result.Encoding != "" {
		t.Fatalf("expected no encoding on binary guard verdict, got %q", out.Result.Encoding)
	}
}

func TestBinaryGuardStageSkipsPlainText(t *testing.T) {
	ctx := NewContext([]byte("Hello, world!\n"), registry.All, nil, nil)
	out := binaryGuardStage{}.Run(ctx)
	if out.Kind != Skip {
		t.Fatalf("expected Skip for plain text, got %v", out.Kind)
	}
}
