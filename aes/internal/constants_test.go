package internal

import "testing"

func TestSBoxValues(t *testing.T) {
	// 推导出的S盒必须与标准值一致
	cases := []struct {
		in   byte
		want byte
	}{
		{0x00, 0x63},
		{0x01, 0x7C},
		{0x53, 0xED},
	}
	for _, c := range cases {
		if got := SBOX[c.in]; got != c.want {
			t.Errorf("SBOX[0x%02x] = 0x%02x, 期望 0x%02x", c.in, got, c.want)
		}
	}
}

func TestSBoxInverse(t *testing.T) {
	// 逆S盒是S盒的置换逆：InvSBOX[SBOX[i]] == i
	for i := 0; i < 256; i++ {
		if got := InvSBOX[SBOX[i]]; got != byte(i) {
			t.Fatalf("InvSBOX[SBOX[0x%02x]] = 0x%02x", i, got)
		}
	}
}

func TestMulInverse(t *testing.T) {
	// 任意非零元素与其乘法逆元的积为1
	for i := 1; i < 256; i++ {
		a := byte(i)
		if got := Mul(a, Inverse(a)); got != 1 {
			t.Fatalf("Mul(0x%02x, Inverse(0x%02x)) = 0x%02x", a, a, got)
		}
	}
}

func TestMulBasics(t *testing.T) {
	// 乘法对0和1的行为
	for i := 0; i < 256; i++ {
		b := byte(i)
		if Mul(0, b) != 0 || Mul(b, 0) != 0 {
			t.Fatalf("0x%02x与0的积不为0", b)
		}
		if Mul(1, b) != b || Mul(b, 1) != b {
			t.Fatalf("0x%02x与1的积不为自身", b)
		}
	}
	// 0x80 * 2 触发约减：0x1B
	if got := Mul(2, 0x80); got != 0x1B {
		t.Errorf("Mul(2, 0x80) = 0x%02x, 期望 0x1B", got)
	}
}

func TestRconSequence(t *testing.T) {
	// RC[0]=1，之后在域上连续乘2
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1B, 0x36}
	for j, w := range want {
		if got := byte(RCON[j] >> 24); got != w {
			t.Errorf("RCON[%d]高字节 = 0x%02x, 期望 0x%02x", j, got, w)
		}
		if RCON[j]&0x00FFFFFF != 0 {
			t.Errorf("RCON[%d]低24位应为0", j)
		}
	}
}

func TestMulTables(t *testing.T) {
	// 乘法表与Mul一致
	tables := map[byte][256]byte{
		2: MUL_2, 3: MUL_3, 9: MUL_9, 11: MUL_11, 13: MUL_13, 14: MUL_14,
	}
	for coef, table := range tables {
		for i := 0; i < 256; i++ {
			if table[i] != Mul(coef, byte(i)) {
				t.Fatalf("MUL_%d[0x%02x]与Mul不一致", coef, i)
			}
		}
	}
}
