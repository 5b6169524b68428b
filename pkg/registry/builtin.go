package registry

// builtin returns the fixed, build-time encoding table (spec §3: "Registry
// entries are fixed at build time"). Order here is declaration order and
// becomes each Encoding's Order field — the final, deterministic tie-break
// key for exact-confidence statistical ties (spec §4.11).
//
// DecoderID values name the codec internal/decode resolves against
// golang.org/x/text/encoding. A handful of entries approximate a legacy
// regional code page with the closest codec golang.org/x/text actually
// ships (cp949 -> euc-kr, johab -> euc-kr, gb2312 -> gbk, big5-hkscs ->
// big5, iso-8859-11 -> tis-620); these are documented here rather than
// hand-rolled, since x/text's table-driven charmap already encodes the
// exact byte-range rules for the encodings it does support and
// re-deriving a bespoke one for these five rarely-seen encodings isn't
// worth abandoning that codec.
func builtin() []Encoding {
	return []Encoding{
		// --- Unicode family -------------------------------------------------
		{Name: "ascii", Aliases: []string{"ascii", "us-ascii", "646", "ansi_x3.4-1968"}, Era: ModernWeb, DecoderID: "ascii"},
		{Name: "utf-8", Aliases: []string{"utf-8", "utf8", "u8", "unicode-1-1-utf-8"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-8"},
		{Name: "utf-8-sig", Aliases: []string{"utf-8-sig", "utf_8_sig"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-8"},
		{Name: "utf-16", Aliases: []string{"utf-16", "utf16", "u16"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-16"},
		{Name: "utf-16-le", Aliases: []string{"utf-16-le", "utf-16le", "ucs-2le"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-16le"},
		{Name: "utf-16-be", Aliases: []string{"utf-16-be", "utf-16be", "ucs-2be"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-16be"},
		{Name: "utf-32", Aliases: []string{"utf-32", "utf32"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-32"},
		{Name: "utf-32-le", Aliases: []string{"utf-32-le", "utf-32le"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-32le"},
		{Name: "utf-32-be", Aliases: []string{"utf-32-be", "utf-32be"}, Era: ModernWeb, MultiByte: true, DecoderID: "utf-32be"},

		// --- Windows code pages (modern web default tier) -------------------
		{Name: "windows-1252", Aliases: []string{"windows-1252", "cp1252", "ansi"}, Era: ModernWeb, DecoderID: "windows-1252"},
		{Name: "windows-1250", Aliases: []string{"windows-1250", "cp1250"}, Era: ModernWeb, DecoderID: "windows-1250"},
		{Name: "windows-1251", Aliases: []string{"windows-1251", "cp1251"}, Era: ModernWeb, DecoderID: "windows-1251", Language: "Russian"},
		{Name: "windows-1253", Aliases: []string{"windows-1253", "cp1253"}, Era: ModernWeb, DecoderID: "windows-1253", Language: "Greek"},
		{Name: "windows-1254", Aliases: []string{"windows-1254", "cp1254"}, Era: ModernWeb, DecoderID: "windows-1254", Language: "Turkish"},
		{Name: "windows-1255", Aliases: []string{"windows-1255", "cp1255"}, Era: ModernWeb, DecoderID: "windows-1255", Language: "Hebrew"},
		{Name: "windows-1256", Aliases: []string{"windows-1256", "cp1256"}, Era: ModernWeb, DecoderID: "windows-1256", Language: "Arabic"},
		{Name: "windows-1257", Aliases: []string{"windows-1257", "cp1257"}, Era: ModernWeb, DecoderID: "windows-1257"},
		{Name: "windows-1258", Aliases: []string{"windows-1258", "cp1258"}, Era: ModernWeb, DecoderID: "windows-1258", Language: "Vietnamese"},
		{Name: "windows-874", Aliases: []string{"windows-874", "cp874", "ms874"}, Era: ModernWeb, DecoderID: "windows-874", Language: "Thai"},

		// --- ISO-8859 family (legacy ISO tier) -------------------------------
		{Name: "iso-8859-1", Aliases: []string{"iso-8859-1", "latin1", "l1", "8859-1"}, Era: LegacyISO, DecoderID: "iso-8859-1"},
		{Name: "iso-8859-2", Aliases: []string{"iso-8859-2", "latin2", "l2"}, Era: LegacyISO, DecoderID: "iso-8859-2"},
		{Name: "iso-8859-3", Aliases: []string{"iso-8859-3", "latin3", "l3"}, Era: LegacyISO, DecoderID: "iso-8859-3"},
		{Name: "iso-8859-4", Aliases: []string{"iso-8859-4", "latin4", "l4"}, Era: LegacyISO, DecoderID: "iso-8859-4"},
		{Name: "iso-8859-5", Aliases: []string{"iso-8859-5"}, Era: LegacyISO, DecoderID: "iso-8859-5", Language: "Russian"},
		{Name: "iso-8859-6", Aliases: []string{"iso-8859-6", "arabic"}, Era: LegacyISO, DecoderID: "iso-8859-6", Language: "Arabic"},
		{Name: "iso-8859-7", Aliases: []string{"iso-8859-7", "greek", "greek8"}, Era: LegacyISO, DecoderID: "iso-8859-7", Language: "Greek"},
		{Name: "iso-8859-8", Aliases: []string{"iso-8859-8", "hebrew"}, Era: LegacyISO, DecoderID: "iso-8859-8", Language: "Hebrew"},
		{Name: "iso-8859-9", Aliases: []string{"iso-8859-9", "latin5", "l5"}, Era: LegacyISO, DecoderID: "iso-8859-9", Language: "Turkish"},
		{Name: "iso-8859-10", Aliases: []string{"iso-8859-10", "latin6", "l6"}, Era: LegacyISO, DecoderID: "iso-8859-10"},
		{Name: "iso-8859-11", Aliases: []string{"iso-8859-11"}, Era: LegacyISO, DecoderID: "tis-620", Language: "Thai"},
		{Name: "iso-8859-13", Aliases: []string{"iso-8859-13", "latin7", "l7"}, Era: LegacyISO, DecoderID: "iso-8859-13"},
		{Name: "iso-8859-14", Aliases: []string{"iso-8859-14", "latin8", "l8"}, Era: LegacyISO, DecoderID: "iso-8859-14"},
		{Name: "iso-8859-15", Aliases: []string{"iso-8859-15", "latin9", "l9"}, Era: LegacyISO, DecoderID: "iso-8859-15"},
		{Name: "iso-8859-16", Aliases: []string{"iso-8859-16", "latin10", "l10"}, Era: LegacyISO, DecoderID: "iso-8859-16"},
		{Name: "tis-620", Aliases: []string{"tis-620", "tis620"}, Era: LegacyISO, DecoderID: "tis-620", Language: "Thai"},

		// --- KOI / Cyrillic legacy-regional tier -----------------------------
		{Name: "koi8-r", Aliases: []string{"koi8-r", "koi8_r"}, Era: LegacyRegional, DecoderID: "koi8-r", Language: "Russian"},
		{Name: "koi8-u", Aliases: []string{"koi8-u", "koi8_u"}, Era: LegacyRegional, DecoderID: "koi8-u", Language: "Ukrainian"},

		// --- Classic Mac tier -------------------------------------------------
		{Name: "macintosh", Aliases: []string{"macintosh", "mac-roman", "x-mac-roman"}, Era: LegacyMac, DecoderID: "macintosh"},
		{Name: "x-mac-cyrillic", Aliases: []string{"x-mac-cyrillic", "mac-cyrillic"}, Era: LegacyMac, DecoderID: "x-mac-cyrillic", Language: "Russian"},

		// --- DOS code pages ----------------------------------------------------
		{Name: "ibm437", Aliases: []string{"ibm437", "cp437", "dos-437"}, Era: DOS, DecoderID: "ibm437"},
		{Name: "ibm850", Aliases: []string{"ibm850", "cp850"}, Era: DOS, DecoderID: "ibm850"},
		{Name: "ibm852", Aliases: []string{"ibm852", "cp852"}, Era: DOS, DecoderID: "ibm852"},
		{Name: "ibm855", Aliases: []string{"ibm855", "cp855"}, Era: DOS, DecoderID: "ibm855", Language: "Russian"},
		{Name: "ibm858", Aliases: []string{"ibm858", "cp858"}, Era: DOS, DecoderID: "ibm858"},
		{Name: "ibm860", Aliases: []string{"ibm860", "cp860"}, Era: DOS, DecoderID: "ibm860", Language: "Portuguese"},
		{Name: "ibm862", Aliases: []string{"ibm862", "cp862"}, Era: DOS, DecoderID: "ibm862", Language: "Hebrew"},
		{Name: "ibm863", Aliases: []string{"ibm863", "cp863"}, Era: DOS, DecoderID: "ibm863"},
		{Name: "ibm865", Aliases: []string{"ibm865", "cp865"}, Era: DOS, DecoderID: "ibm865"},
		{Name: "ibm866", Aliases: []string{"ibm866", "cp866"}, Era: DOS, DecoderID: "ibm866", Language: "Russian"},

		// --- Mainframe EBCDIC tier -----------------------------------------
		{Name: "ibm037", Aliases: []string{"ibm037", "cp037", "ebcdic-cp-us"}, Era: Mainframe, DecoderID: "ibm037"},
		{Name: "ibm1047", Aliases: []string{"ibm1047", "cp1047"}, Era: Mainframe, DecoderID: "ibm1047"},
		{Name: "ibm1140", Aliases: []string{"ibm1140", "cp1140"}, Era: Mainframe, DecoderID: "ibm1140"},

		// --- Japanese ------------------------------------------------------
		{Name: "shift-jis", Aliases: []string{"shift-jis", "sjis", "ms932", "windows-31j"}, Era: ModernWeb, MultiByte: true, DecoderID: "shift-jis", Language: "Japanese"},
		{Name: "euc-jp", Aliases: []string{"euc-jp", "eucjp"}, Era: ModernWeb, MultiByte: true, DecoderID: "euc-jp", Language: "Japanese"},
		{Name: "iso-2022-jp", Aliases: []string{"iso-2022-jp"}, Era: ModernWeb, MultiByte: true, DecoderID: "iso-2022-jp", Language: "Japanese"},

		// --- Korean ----------------------------------------------------------
		{Name: "euc-kr", Aliases: []string{"euc-kr", "euckr"}, Era: ModernWeb, MultiByte: true, DecoderID: "euc-kr", Language: "Korean"},
		{Name: "iso-2022-kr", Aliases: []string{"iso-2022-kr"}, Era: ModernWeb, MultiByte: true, DecoderID: "iso-2022-kr", Language: "Korean"},
		{Name: "cp949", Aliases: []string{"cp949", "uhc", "ms949"}, Era: ModernWeb, MultiByte: true, DecoderID: "euc-kr", Language: "Korean"},
		{Name: "johab", Aliases: []string{"johab", "cp1361"}, Era: LegacyRegional, MultiByte: true, DecoderID: "euc-kr", Language: "Korean"},

		// --- Chinese ----------------------------------------------------------
		{Name: "gb2312", Aliases: []string{"gb2312", "euc-cn"}, Era: ModernWeb, MultiByte: true, DecoderID: "gbk", Language: "Chinese"},
		{Name: "gbk", Aliases: []string{"gbk", "cp936", "ms936"}, Era: ModernWeb, MultiByte: true, DecoderID: "gbk", Language: "Chinese"},
		{Name: "gb18030", Aliases: []string{"gb18030"}, Era: ModernWeb, MultiByte: true, DecoderID: "gb18030", Language: "Chinese"},
		{Name: "hz-gb-2312", Aliases: []string{"hz-gb-2312", "hz"}, Era: LegacyRegional, MultiByte: true, DecoderID: "hz-gb-2312", Language: "Chinese"},
		{Name: "big5", Aliases: []string{"big5", "big-5", "cn-big5"}, Era: ModernWeb, MultiByte: true, DecoderID: "big5", Language: "Chinese"},
		{Name: "big5-hkscs", Aliases: []string{"big5-hkscs"}, Era: ModernWeb, MultiByte: true, DecoderID: "big5", Language: "Chinese"},
	}
}
