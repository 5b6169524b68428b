package decode

import "testing"

func TestTryDecodeASCII(t *testing.T) {
	t.Run("pure ascii ok", func(t *testing.T) {
		if r := TryDecode([]byte("Hello, world!"), "ascii"); !r.OK {
			t.Fatalf("expected ascii text to pass, got %+v", r)
		}
	})

	t.Run("high bit byte fails at offset", func(t *testing.T) {
		r := TryDecode([]byte("ab\xffcd"), "ascii")
		if r.OK {
			t.Fatalf("expected high-bit byte to fail ascii decode")
		}
		if r.ErrAt != 2 {
			t.Fatalf("expected ErrAt=2, got %d", r.ErrAt)
		}
	})
}

func TestTryDecodeUTF8(t *testing.T) {
	t.Run("valid multi-byte sequence", func(t *testing.T) {
		if r := TryDecode([]byte("日本語テスト"), "utf-8"); !r.OK {
			t.Fatalf("expected valid UTF-8 to pass")
		}
	})

	t.Run("truncated multi-byte sequence fails", func(t *testing.T) {
		r := TryDecode([]byte{'a', 0xE6, 0x97}, "utf-8")
		if r.OK {
			t.Fatalf("expected truncated UTF-8 sequence to fail")
		}
	})
}

func TestTryDecodeUTF16(t *testing.T) {
	// "hi" in UTF-16LE, no BOM.
	le := []byte{'h', 0x00, 'i', 0x00}
	if r := TryDecode(le, "utf-16le"); !r.OK {
		t.Fatalf("expected valid UTF-16LE to pass")
	}

	t.Run("odd length fails", func(t *testing.T) {
		if r := TryDecode([]byte{'h', 0x00, 'i'}, "utf-16le"); r.OK {
			t.Fatalf("expected odd-length buffer to fail UTF-16 decode")
		}
	})
}

func TestTryDecodeUTF32(t *testing.T) {
	be := []byte{0x00, 0x00, 0x00, 'h', 0x00, 0x00, 0x00, 'i'}
	if r := TryDecode(be, "utf-32be"); !r.OK {
		t.Fatalf("expected valid UTF-32BE to pass")
	}

	t.Run("surrogate code point fails", func(t *testing.T) {
		surrogate := []byte{0x00, 0x00, 0xD8, 0x00}
		if r := TryDecode(surrogate, "utf-32be"); r.OK {
			t.Fatalf("expected surrogate code point to fail UTF-32 decode")
		}
	})
}

func TestTryDecodeCharmapRoundTrip(t *testing.T) {
	// "Привет" (Russian, "Hello") encoded in windows-1251.
	win1251 := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}
	r := TryDecode(win1251, "windows-1251")
	if !r.OK {
		t.Fatalf("expected valid windows-1251 bytes to decode cleanly")
	}
}

func TestTryDecodeUnknownDecoderID(t *testing.T) {
	r := TryDecode([]byte("anything"), "not-a-real-codec")
	if r.OK {
		t.Fatalf("expected unknown decoder id to report failure, not panic")
	}
}

func TestDecodeToUTF8Prefix(t *testing.T) {
	win1251 := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}
	out, err := DecodeToUTF8Prefix(win1251, "windows-1251", 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "Привет" {
		t.Fatalf("expected decoded Привет, got %q", out)
	}
}

func TestDecodeToUTF8PrefixTruncates(t *testing.T) {
	out, err := DecodeToUTF8Prefix([]byte("Hello, world!"), "ascii", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "Hello" {
		t.Fatalf("expected truncated prefix 'Hello', got %q", out)
	}
}
