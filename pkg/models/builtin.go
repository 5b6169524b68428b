package models

import (
	"math"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/chardetect/chardet-core/internal/bigram"
)

// builtinModels computes a small, representative set of bigram profiles
// from embedded sample sentences at init time — real bigram-counting Go
// code, not a hand-authored binary blob (spec.md explicitly puts
// model-training scripts out of scope; see DESIGN.md's Model Store entry
// for the reasoning). Each sample is encoded into its target byte
// encoding via the same golang.org/x/text codecs internal/decode uses, so
// the resulting tables are genuine byte distributions for that encoding,
// not invented numbers. This set is intentionally small: enough to make
// statistical scoring (spec §4.11) exercise real, distinguishable
// per-language distributions in tests, not a production-scale corpus.
func builtinModels() []*bigram.Model {
	type sample struct {
		lang string
		enc  string
		codec encoding.Encoding // nil means the text is already the target bytes (ascii/utf-8)
		text string
	}

	samples := []sample{
		{"English", "ascii", nil, englishSample},
		{"English", "utf-8", nil, englishSample},
		{"Russian", "utf-8", nil, russianSample},
		{"Russian", "windows-1251", charmap.Windows1251, russianSample},
		{"Russian", "koi8-r", charmap.KOI8R, russianSample},
		{"Russian", "iso-8859-5", charmap.ISO8859_5, russianSample},
		{"Greek", "utf-8", nil, greekSample},
		{"Greek", "iso-8859-7", charmap.ISO8859_7, greekSample},
		{"Hebrew", "utf-8", nil, hebrewSample},
		{"Hebrew", "iso-8859-8", charmap.ISO8859_8, hebrewSample},
		{"Turkish", "utf-8", nil, turkishSample},
		{"Turkish", "iso-8859-9", charmap.ISO8859_9, turkishSample},
		{"Japanese", "utf-8", nil, japaneseSample},
		{"Japanese", "euc-jp", japanese.EUCJP, japaneseSample},
		{"Japanese", "shift-jis", japanese.ShiftJIS, japaneseSample},
		{"Korean", "utf-8", nil, koreanSample},
		{"Korean", "euc-kr", korean.EUCKR, koreanSample},
		{"Chinese", "utf-8", nil, chineseSample},
		{"Chinese", "gbk", simplifiedchinese.GBK, chineseSample},
		{"Chinese", "big5", traditionalchinese.Big5, traditionalChineseSample},
	}

	out := make([]*bigram.Model, 0, len(samples))
	for _, s := range samples {
		data := []byte(s.text)
		if s.codec != nil {
			encoded, err := s.codec.NewEncoder().Bytes(data)
			if err != nil {
				// Sample text isn't representable in this legacy
				// encoding (shouldn't happen for our curated samples);
				// skip rather than ship a bogus profile.
				continue
			}
			data = encoded
		}
		out = append(out, trainModel(s.lang, s.enc, data))
	}
	return out
}

// trainModel counts (b1, b2) adjacencies in data and quantizes them into
// a dense uint8 table, the same shape a production models.bin entry has
// on disk (spec §3's Bigram Profile).
func trainModel(lang, enc string, data []byte) *bigram.Model {
	var counts [bigram.TableSize]uint32
	if len(data) >= 2 {
		prev := data[0]
		for _, b := range data[1:] {
			counts[(uint16(prev)<<8)|uint16(b)]++
			prev = b
		}
	}

	var maxCount uint32
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	m := &bigram.Model{Language: lang, Encoding: enc}
	var sumSq float64
	if maxCount > 0 {
		for i, c := range counts {
			// Quantize relative to the peak count into [0, 255], the
			// same u8 range spec §3 and §6's wire format use.
			q := uint8((float64(c) / float64(maxCount)) * 255)
			m.Table[i] = q
			sumSq += float64(q) * float64(q)
		}
	}
	m.Norm = float32(math.Sqrt(sumSq))
	return m
}

const (
	englishSample = "The quick brown fox jumps over the lazy dog. " +
		"Every good programmer knows that clear code matters more than clever code. " +
		"She sells seashells by the seashore, and the shells she sells are seashells, I'm sure."

	russianSample = "Съешь же ещё этих мягких французских булок да выпей чаю. " +
		"Широкая электрификация южных губерний даст мощный толчок подъёму сельского хозяйства."

	greekSample = "Ξεσκεπάζω την ψυχοφθόρα βδελυγμία. " +
		"Καλημέρα σας, πώς είστε σήμερα το πρωί στην όμορφη πόλη;"

	hebrewSample = "שלום עולם, מה שלומך היום. " +
		"דג סקרן שט בים מאוכזב ולפתע מצא חברה."

	turkishSample = "Pijamalı hasta yağız şoföre çabucak güvendi. " +
		"Bugün hava çok güzel, dışarı çıkıp yürüyüş yapmak istiyorum."

	japaneseSample = "日本語のテストです。今日はとても良い天気ですね。" +
		"隣の客はよく柿食う客だ。春の夜の夢のごとし。"

	koreanSample = "다람쥐 헌 쳇바퀴에 타고파. 오늘은 날씨가 정말 좋네요." +
		"한글은 세종대왕이 창제한 문자입니다."

	chineseSample = "今天天气真好，我们一起去公园散步吧。" +
		"学而时习之，不亦说乎。有朋自远方来，不亦乐乎。"

	// traditionalChineseSample is chineseSample in traditional characters:
	// the simplified forms (们, 说, ...) have no Big5 code.
	traditionalChineseSample = "今天天氣真好，我們一起去公園散步吧。" +
		"學而時習之，不亦說乎。有朋自遠方來，不亦樂乎。"
)
