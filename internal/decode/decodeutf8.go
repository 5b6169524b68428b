package decode

import (
	"bytes"
	"io"

	"golang.org/x/text/transform"
)

// DecodeToUTF8Prefix decodes up to maxBytes of data as decoderID and
// returns the resulting UTF-8 bytes, used by the tier-3 language fallback
// (spec §4.11/§4.12: "decode to UTF-8 bytes ... and score against the
// UTF-8 per-language profiles"). It streams through the codec's decoder
// via golang.org/x/text/transform rather than materializing a full
// Decoder.Bytes call, so the caller controls exactly how much of a large
// input gets transcoded for scoring.
func DecodeToUTF8Prefix(data []byte, decoderID string, maxBytes int) ([]byte, error) {
	if decoderID == "utf-8" || decoderID == "ascii" {
		if len(data) > maxBytes {
			data = data[:maxBytes]
		}
		return data, nil
	}

	codec, ok := Lookup(decoderID)
	if !ok {
		return nil, errUnknownDecoder(decoderID)
	}

	r := transform.NewReader(bytes.NewReader(data), codec.NewDecoder())
	limited := io.LimitReader(r, int64(maxBytes))
	out, err := io.ReadAll(limited)
	if err != nil && err != io.EOF {
		return out, err
	}
	return out, nil
}

type errUnknownDecoder string

func (e errUnknownDecoder) Error() string {
	return "decode: no codec registered for decoder id " + string(e)
}
