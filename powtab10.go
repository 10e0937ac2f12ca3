// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// grisuPower is one entry of the cached decimal power table: the
// correctly-rounded 64-bit mantissa of 10^decExp, normalized (top bit
// set), together with its exact binary exponent.
type grisuPower struct {
	m      uint64
	binExp int32
}

// grisuPowersOfTen covers decimal exponents -348..340 in steps of 8
// (87 entries), following the closed form
// binExp = ceil((alpha - e + 63) * log2(10)). Values are taken
// verbatim from the reference table (see DESIGN.md); each mantissa is
// the correctly-rounded 64-bit fraction of the corresponding power of
// ten, normalized so bit 63 is set.
var grisuPowersOfTen = [87]grisuPower{
	{m: 0xfa8fd5a0081c0288, binExp: -1220}, // 10^-348
	{m: 0xbaaee17fa23ebf76, binExp: -1193}, // 10^-340
	{m: 0x8b16fb203055ac76, binExp: -1166}, // 10^-332
	{m: 0xcf42894a5dce35ea, binExp: -1140}, // 10^-324
	{m: 0x9a6bb0aa55653b2d, binExp: -1113}, // 10^-316
	{m: 0xe61acf033d1a45df, binExp: -1087}, // 10^-308
	{m: 0xab70fe17c79ac6ca, binExp: -1060}, // 10^-300
	{m: 0xff77b1fcbebcdc4f, binExp: -1034}, // 10^-292
	{m: 0xbe5691ef416bd60c, binExp: -1007}, // 10^-284
	{m: 0x8dd01fad907ffc3c, binExp: -980},  // 10^-276
	{m: 0xd3515c2831559a83, binExp: -954},  // 10^-268
	{m: 0x9d71ac8fada6c9b5, binExp: -927},  // 10^-260
	{m: 0xea9c227723ee8bcb, binExp: -901},  // 10^-252
	{m: 0xaecc49914078536d, binExp: -874},  // 10^-244
	{m: 0x823c12795db6ce57, binExp: -847},  // 10^-236
	{m: 0xc21094364dfb5637, binExp: -821},  // 10^-228
	{m: 0x9096ea6f3848984f, binExp: -794},  // 10^-220
	{m: 0xd77485cb25823ac7, binExp: -768},  // 10^-212
	{m: 0xa086cfcd97bf97f4, binExp: -741},  // 10^-204
	{m: 0xef340a98172aace5, binExp: -715},  // 10^-196
	{m: 0xb23867fb2a35b28e, binExp: -688},  // 10^-188
	{m: 0x84c8d4dfd2c63f3b, binExp: -661},  // 10^-180
	{m: 0xc5dd44271ad3cdba, binExp: -635},  // 10^-172
	{m: 0x936b9fcebb25c996, binExp: -608},  // 10^-164
	{m: 0xdbac6c247d62a584, binExp: -582},  // 10^-156
	{m: 0xa3ab66580d5fdaf6, binExp: -555},  // 10^-148
	{m: 0xf3e2f893dec3f126, binExp: -529},  // 10^-140
	{m: 0xb5b5ada8aaff80b8, binExp: -502},  // 10^-132
	{m: 0x87625f056c7c4a8b, binExp: -475},  // 10^-124
	{m: 0xc9bcff6034c13053, binExp: -449},  // 10^-116
	{m: 0x964e858c91ba2655, binExp: -422},  // 10^-108
	{m: 0xdff9772470297ebd, binExp: -396},  // 10^-100
	{m: 0xa6dfbd9fb8e5b88f, binExp: -369},  // 10^-92
	{m: 0xf8a95fcf88747d94, binExp: -343},  // 10^-84
	{m: 0xb94470938fa89bcf, binExp: -316},  // 10^-76
	{m: 0x8a08f0f8bf0f156b, binExp: -289},  // 10^-68
	{m: 0xcdb02555653131b6, binExp: -263},  // 10^-60
	{m: 0x993fe2c6d07b7fac, binExp: -236},  // 10^-52
	{m: 0xe45c10c42a2b3b06, binExp: -210},  // 10^-44
	{m: 0xaa242499697392d3, binExp: -183},  // 10^-36
	{m: 0xfd87b5f28300ca0e, binExp: -157},  // 10^-28
	{m: 0xbce5086492111aeb, binExp: -130},  // 10^-20
	{m: 0x8cbccc096f5088cc, binExp: -103},  // 10^-12
	{m: 0xd1b71758e219652c, binExp: -77},   // 10^-4
	{m: 0x9c40000000000000, binExp: -50},   // 10^4
	{m: 0xe8d4a51000000000, binExp: -24},   // 10^12
	{m: 0xad78ebc5ac620000, binExp: 3},     // 10^20
	{m: 0x813f3978f8940984, binExp: 30},    // 10^28
	{m: 0xc097ce7bc90715b3, binExp: 56},    // 10^36
	{m: 0x8f7e32ce7bea5c70, binExp: 83},    // 10^44
	{m: 0xd5d238a4abe98068, binExp: 109},   // 10^52
	{m: 0x9f4f2726179a2245, binExp: 136},   // 10^60
	{m: 0xed63a231d4c4fb27, binExp: 162},   // 10^68
	{m: 0xb0de65388cc8ada8, binExp: 189},   // 10^76
	{m: 0x83c7088e1aab65db, binExp: 216},   // 10^84
	{m: 0xc45d1df942711d9a, binExp: 242},   // 10^92
	{m: 0x924d692ca61be758, binExp: 269},   // 10^100
	{m: 0xda01ee641a708dea, binExp: 295},   // 10^108
	{m: 0xa26da3999aef774a, binExp: 322},   // 10^116
	{m: 0xf209787bb47d6b85, binExp: 348},   // 10^124
	{m: 0xb454e4a179dd1877, binExp: 375},   // 10^132
	{m: 0x865b86925b9bc5c2, binExp: 402},   // 10^140
	{m: 0xc83553c5c8965d3d, binExp: 428},   // 10^148
	{m: 0x952ab45cfa97a0b3, binExp: 455},   // 10^156
	{m: 0xde469fbd99a05fe3, binExp: 481},   // 10^164
	{m: 0xa59bc234db398c25, binExp: 508},   // 10^172
	{m: 0xf6c69a72a3989f5c, binExp: 534},   // 10^180
	{m: 0xb7dcbf5354e9bece, binExp: 561},   // 10^188
	{m: 0x88fcf317f22241e2, binExp: 588},   // 10^196
	{m: 0xcc20ce9bd35c78a5, binExp: 614},   // 10^204
	{m: 0x98165af37b2153df, binExp: 641},   // 10^212
	{m: 0xe2a0b5dc971f303a, binExp: 667},   // 10^220
	{m: 0xa8d9d1535ce3b396, binExp: 694},   // 10^228
	{m: 0xfb9b7cd9a4a7443c, binExp: 720},   // 10^236
	{m: 0xbb764c4ca7a44410, binExp: 747},   // 10^244
	{m: 0x8bab8eefb6409c1a, binExp: 774},   // 10^252
	{m: 0xd01fef10a657842c, binExp: 800},   // 10^260
	{m: 0x9b10a4e5e9913129, binExp: 827},   // 10^268
	{m: 0xe7109bfba19c0c9d, binExp: 853},   // 10^276
	{m: 0xac2820d9623bf429, binExp: 880},   // 10^284
	{m: 0x80444b5e7aa7cf85, binExp: 907},   // 10^292
	{m: 0xbf21e44003acdd2d, binExp: 933},   // 10^300
	{m: 0x8e679c2f5e44ff8f, binExp: 960},   // 10^308
	{m: 0xd433179d9c8cb841, binExp: 986},   // 10^316
	{m: 0x9e19db92b4e31ba9, binExp: 1013},  // 10^324
	{m: 0xeb96bf6ebadf77d9, binExp: 1039},  // 10^332
	{m: 0xaf87023b9bf0ee6b, binExp: 1066},  // 10^340
}

// grisuPowersOfTenMinDecExp and grisuPowersOfTenMaxDecExp bound the
// decimal exponents directly covered by the table.
const (
	grisuPowersOfTenMinDecExp = -348
	grisuPowersOfTenMaxDecExp = 340
	grisuPowersOfTenStep      = 8
)

// smallPowersOfTen holds exact values of 10^0..10^7, used to cover
// lookupPowerOfTen's residual: any exponent in range is reached by one
// table lookup plus at most one multiplication by 10^residual.
var smallPowersOfTen = [8]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000,
}

// lookupPowerOfTen returns the table entry whose decimal exponent is
// the nearest multiple of 8 not exceeding want, along with the
// residual decimal exponent (0..7) still needed to reach want exactly.
// want must lie in [grisuPowersOfTenMinDecExp, grisuPowersOfTenMaxDecExp+7];
// callers outside that range have already been routed to overflow or
// underflow before reaching the power table.
func lookupPowerOfTen(want int) (entry grisuPower, residual int) {
	index := (want - grisuPowersOfTenMinDecExp) / grisuPowersOfTenStep
	if index < 0 {
		index = 0
	}
	if index > len(grisuPowersOfTen)-1 {
		index = len(grisuPowersOfTen) - 1
	}
	tableExp := grisuPowersOfTenMinDecExp + index*grisuPowersOfTenStep
	return grisuPowersOfTen[index], want - tableExp
}

// extendedPowerOfTen returns a normalized extendedFloat approximating
// 10^exp, combining one table lookup with at most one residual
// small-power multiplication.
func extendedPowerOfTen(exp int) extendedFloat {
	entry, residual := lookupPowerOfTen(exp)
	base := extendedFloat{m: entry.m, e: entry.binExp}
	if residual == 0 {
		return base
	}
	small := extendedFloat{m: smallPowersOfTen[residual], e: 0}.normalize()
	return base.mul(small)
}
