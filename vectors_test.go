package wyhash_test

import "math"

// Reference digests for the key/seed/secret grid dumped by the reference
// implementation. secretSeed 0 means DefaultSecret, 1 means MakeSecret(1).
var gridVectors = []struct {
	secretSeed uint64
	seed       uint64
	key        string
	want       uint64
}{
	{secretSeed: 0, seed: 0, key: "", want: 0x0409638ee2bde459},
	{secretSeed: 0, seed: 0, key: "\x00", want: 0xfbe5af10e5f8bd85},
	{secretSeed: 0, seed: 0, key: "\xff", want: 0x54563a582102bf2e},
	{secretSeed: 0, seed: 0, key: "\x00\x00\x00\x00\x00\x00\x00", want: 0x003cd624ee762f2e},
	{secretSeed: 0, seed: 0, key: "\x00\x00\x00\x00\x00\x00\x00\x00", want: 0xe6b7875d0487a132},
	{secretSeed: 0, seed: 0, key: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", want: 0xda83d4271fcd766d},
	{secretSeed: 0, seed: 0, key: "\xff\xff\xff\xff\xff\xff\xff\xff\xff", want: 0x7b0038c7e3f94337},
	{secretSeed: 0, seed: 0, key: "abc", want: 0x02a4f1d7cb516c72},
	{secretSeed: 0, seed: 0, key: "1234567890123456789012345678901234567890123456789012345678901234567890", want: 0x4bbd596236ff8ca9},
	{secretSeed: 0, seed: 1, key: "", want: 0xb8dc5edd260f4037},
	{secretSeed: 0, seed: 1, key: "\x00", want: 0x85669af5073ee8be},
	{secretSeed: 0, seed: 1, key: "\xff", want: 0x81efbdfd4d32a145},
	{secretSeed: 0, seed: 1, key: "\x00\x00\x00\x00\x00\x00\x00", want: 0x9ee633e641c705e9},
	{secretSeed: 0, seed: 1, key: "\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x1d267f9e2ebc0c79},
	{secretSeed: 0, seed: 1, key: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", want: 0xe9c8bbb60fabb4f7},
	{secretSeed: 0, seed: 1, key: "\xff\xff\xff\xff\xff\xff\xff\xff\xff", want: 0xdae9581894c7e63e},
	{secretSeed: 0, seed: 1, key: "abc", want: 0xdbe5b1e5823255b7},
	{secretSeed: 0, seed: 1, key: "1234567890123456789012345678901234567890123456789012345678901234567890", want: 0x9ad4ac5eff92811f},
	{secretSeed: 0, seed: math.MaxUint64, key: "", want: 0x20ac8b93d401d5e6},
	{secretSeed: 0, seed: math.MaxUint64, key: "\x00", want: 0x2b5159d14d63f3e4},
	{secretSeed: 0, seed: math.MaxUint64, key: "\xff", want: 0xade5617acd56003f},
	{secretSeed: 0, seed: math.MaxUint64, key: "\x00\x00\x00\x00\x00\x00\x00", want: 0x336b355443bf47e0},
	{secretSeed: 0, seed: math.MaxUint64, key: "\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x001239bf0d7325d6},
	{secretSeed: 0, seed: math.MaxUint64, key: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x0438c7fc8a52c3d4},
	{secretSeed: 0, seed: math.MaxUint64, key: "\xff\xff\xff\xff\xff\xff\xff\xff\xff", want: 0x66e2c2769747ef62},
	{secretSeed: 0, seed: math.MaxUint64, key: "abc", want: 0x0d7032f6ca68e321},
	{secretSeed: 0, seed: math.MaxUint64, key: "1234567890123456789012345678901234567890123456789012345678901234567890", want: 0xf8249050310ed52b},
	{secretSeed: 1, seed: 0, key: "", want: 0x262738ec8f5e1bc5},
	{secretSeed: 1, seed: 0, key: "\x00", want: 0x0d27244426f2cbbd},
	{secretSeed: 1, seed: 0, key: "\xff", want: 0x466ccf7b2d6353da},
	{secretSeed: 1, seed: 0, key: "\x00\x00\x00\x00\x00\x00\x00", want: 0xd3272ef376546b2c},
	{secretSeed: 1, seed: 0, key: "\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x5e27072848b49804},
	{secretSeed: 1, seed: 0, key: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x4527028fe04b49fc},
	{secretSeed: 1, seed: 0, key: "\xff\xff\xff\xff\xff\xff\xff\xff\xff", want: 0xd13ca5781d59dcc3},
	{secretSeed: 1, seed: 0, key: "abc", want: 0xdeff0e590d76adfc},
	{secretSeed: 1, seed: 0, key: "1234567890123456789012345678901234567890123456789012345678901234567890", want: 0x0795b941f9a7e815},
	{secretSeed: 1, seed: 1, key: "", want: 0x5a12e3372c736819},
	{secretSeed: 1, seed: 1, key: "\x00", want: 0x5219efce4c93a3a6},
	{secretSeed: 1, seed: 1, key: "\xff", want: 0x3ca64bd46691daf3},
	{secretSeed: 1, seed: 1, key: "\x00\x00\x00\x00\x00\x00\x00", want: 0x6217d0780d50357c},
	{secretSeed: 1, seed: 1, key: "\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x1a4a7ac827755331},
	{secretSeed: 1, seed: 1, key: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x12710587479596ce},
	{secretSeed: 1, seed: 1, key: "\xff\xff\xff\xff\xff\xff\xff\xff\xff", want: 0xe997cb417109028d},
	{secretSeed: 1, seed: 1, key: "abc", want: 0xe017008d339d8b17},
	{secretSeed: 1, seed: 1, key: "1234567890123456789012345678901234567890123456789012345678901234567890", want: 0x1a251911facbbab9},
	{secretSeed: 1, seed: math.MaxUint64, key: "", want: 0x485fef6b12a5aa2f},
	{secretSeed: 1, seed: math.MaxUint64, key: "\x00", want: 0x55d800bc58e905fa},
	{secretSeed: 1, seed: math.MaxUint64, key: "\xff", want: 0x548a25a0bdff0c7a},
	{secretSeed: 1, seed: math.MaxUint64, key: "\x00\x00\x00\x00\x00\x00\x00", want: 0x34ef298b9f930fcc},
	{secretSeed: 1, seed: math.MaxUint64, key: "\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x2474a601fcc014a7},
	{secretSeed: 1, seed: math.MaxUint64, key: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", want: 0x21f1ff520b0be052},
	{secretSeed: 1, seed: math.MaxUint64, key: "\xff\xff\xff\xff\xff\xff\xff\xff\xff", want: 0x20ee7ba5d3a026fb},
	{secretSeed: 1, seed: math.MaxUint64, key: "abc", want: 0x3e6171949ece0c64},
	{secretSeed: 1, seed: math.MaxUint64, key: "1234567890123456789012345678901234567890123456789012345678901234567890", want: 0x4d6d59bc5a900d04},
}

// Digests of the first n bytes of 0x00, 0x01, 0x02, ... for seeds 0 and
// 2^64-1, pinning every length-class boundary.
var lengthVectors = []struct {
	n       int
	seed0   uint64
	seedMax uint64
}{
	{n: 0, seed0: 0x0409638ee2bde459, seedMax: 0x20ac8b93d401d5e6},
	{n: 1, seed0: 0xfbe5af10e5f8bd85, seedMax: 0x2b5159d14d63f3e4},
	{n: 2, seed0: 0x1148f10677acd42a, seedMax: 0xf25af348456f561f},
	{n: 3, seed0: 0xf971e76c35096d43, seedMax: 0x97edb55e756d5f98},
	{n: 4, seed0: 0xed0d4340e81b7c4d, seedMax: 0xab74c5508a0fba34},
	{n: 5, seed0: 0x47254ee637b8d209, seedMax: 0x083d220835a827dd},
	{n: 7, seed0: 0xedc8493178d0861f, seedMax: 0x556334a0b89ffd89},
	{n: 8, seed0: 0xb425a02f871eb75f, seedMax: 0x02537966da441995},
	{n: 9, seed0: 0x35cc57096bb37904, seedMax: 0x3dd06bfe61e8ac23},
	{n: 15, seed0: 0x019e3b3c5b9e54d8, seedMax: 0x0828efad5efa6fea},
	{n: 16, seed0: 0xff5ae257316b07b5, seedMax: 0xf3cdb04c16399b4b},
	{n: 17, seed0: 0x7ed011944b0c00ad, seedMax: 0xdd9775449d203b80},
	{n: 24, seed0: 0xd2c3c5567a405c44, seedMax: 0x66dca9c324caf0a2},
	{n: 25, seed0: 0x3ee6ba189da1a449, seedMax: 0x21a2575271524aee},
	{n: 32, seed0: 0x129f13f84e73df6d, seedMax: 0x4670d8a16adee4d2},
	{n: 33, seed0: 0x8387a9294a14a507, seedMax: 0x41f98c180aaf9622},
	{n: 47, seed0: 0x6c297a0e19ac67a7, seedMax: 0x27935b6fc7753da9},
	{n: 48, seed0: 0xce6cc055c4aa2354, seedMax: 0xc024c9d307d78ee5},
	{n: 49, seed0: 0xdd118c769fb13542, seedMax: 0x4d36a1bcba3e55bc},
	{n: 64, seed0: 0xae9ac4f9962d6746, seedMax: 0x01a5379f6f367392},
	{n: 80, seed0: 0xf8c09c927bcaa9ff, seedMax: 0xba2021fe7b89a83d},
	{n: 96, seed0: 0x4acbe2a4e0e44872, seedMax: 0x4b965ba22881141d},
	{n: 97, seed0: 0xad119c0496db2624, seedMax: 0x6b793b11c7ee0f14},
	{n: 128, seed0: 0x7e6647de704c914a, seedMax: 0x258ba399a9bc2796},
	{n: 255, seed0: 0xc727a5c685f837f0, seedMax: 0xb1d5cb5ad7e66606},
}

var randVectors = []struct {
	seed   uint64
	values [32]uint64
	final  uint64
}{
	{
		seed:   0,
		values: [32]uint64{
			0x111cb3a78f59a58e, 0xceabd938ff4e856d, 0x61fb51318f47d2a4, 0x78bd03c491909760,
			0x7c003d7fb14820de, 0x8769964729356b1f, 0xe214284dc87f9829, 0x29a283ebb1b295a2,
			0xf4e11accbc44be57, 0x9a108fea1a03ac0a, 0x18d48308dd273c7e, 0xce6616261de32d8e,
			0xdfc7e18b21bdf63a, 0xde0d48d5d9c81ec5, 0x39a8a6eadeeefa1a, 0xf119a8000e655799,
			0x03e6c47651fff168, 0xa9a9ab7c75f0061a, 0x7554a31b163e155c, 0x07ef1186d8a02e26,
			0x8bf3faf313ba4308, 0x078317ebfaacc42f, 0xf6df686a8871e035, 0xf2d71c1084701fe1,
			0x0cd72f694d86810d, 0xd52e9c8ffe3c55ac, 0xdb0940be97da657a, 0xcd5ae2f075f83aac,
			0x748fcb383b095a12, 0x4726bce2ffaa41d6, 0xb7cc5c73bda4cad3, 0x944ddae819e8eb43,
		},
		final: 0x0ec3ac8f17ac85e0,
	},
	{
		seed:   1,
		values: [32]uint64{
			0xcdef1695e1f8ed2c, 0x61d6d24b1c9aad40, 0x8cf880c22eebfadf, 0x05b3a992fedc4f8a,
			0x01942e5b0cb4ae64, 0xe2657474f69972c4, 0xc113c21e69d3a061, 0x08bd7e3916067d59,
			0x76bc337c0614bbd6, 0x3b11c45afab794c1, 0x37d189387c9b2509, 0xe967d097be970444,
			0x8cde5d094d310b88, 0x3b0c32e67e54263f, 0x1caa559abe7ac372, 0xd61addd2eed10c40,
			0x5320dce0f01f0998, 0xceaacacdda9c6ed0, 0xac57854b76e22d67, 0x1aec38b6386c166c,
			0xbd49c255ffb8ed0e, 0xa48389341b002cf4, 0xd5d23fba2bddb89d, 0xd3d61fcf24a3f658,
			0xb712dabab168521b, 0x7428053d9d887e07, 0xfa36160ef76e0a45, 0xee5ff3dfd6ac53c6,
			0x7c9b42c40f1fb4e0, 0xe029de105ffea9eb, 0x9cceb9431c30f29b, 0x794f2718f674b01e,
		},
		final: 0x0ec3ac8f17ac85e1,
	},
	{
		seed:   math.MaxUint64,
		values: [32]uint64{
			0xba1dc814e82d5d44, 0x57accfe85fe29d15, 0x3afa6e616fb3aa6f, 0x6cfb4186089762e0,
			0xd90193b110f43807, 0x246ab81789414074, 0x83150dfd28eb70d3, 0x643f71b82189b83d,
			0x6be28ce3dcb059ba, 0x79125abbbbefc772, 0xfdd79d5f3db31754, 0xc0d2539db47aa6c6,
			0x3acb64dd814a0fc0, 0x750b8605397c7682, 0xc6afb33a7f05113f, 0x5f17c873c94b4745,
			0xbaea5ba4b16be9c2, 0x00a805af14641e62, 0x5a5041ebb749feb7, 0x353ce98bf6b7651e,
			0x24f12b81f0765bd2, 0xe280a5d95a58fb67, 0x93d8a11968a40bcf, 0x7a4e110b960744fd,
			0xadd06e9badcab8c7, 0xb62f1a5e5ee02cd4, 0xb80bbd6e3807bdb1, 0x9480281772fcc884,
			0x998f116adb44b3eb, 0x2a2311b31e4679bf, 0x4acdf2a2dd08a209, 0x8e17300d4ac21ba3,
		},
		final: 0x0ec3ac8f17ac85df,
	},
}
