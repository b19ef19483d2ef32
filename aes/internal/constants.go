package internal

import "math/bits"

// AES常量定义
//
// 所有表都在GF(2^8)上推导得出，不使用硬编码字面量。
// 有限域的约减多项式为 x^8+x^4+x^3+x+1（低位表示为0x1B）。

// Mul 计算a和b在GF(2^8)上的乘积
func Mul(a, b byte) byte {
	var res byte
	v := b
	for i := 0; i < 8; i++ {
		if (a>>i)&1 != 0 {
			res ^= v
		}
		// 域上的2倍：左移一位，若移出位为1则异或0x1B
		msb := v & 0x80
		v <<= 1
		if msb != 0 {
			v ^= 0x1B
		}
	}
	return res
}

var (
	// 以3为生成元的指数表和对数表
	expTable [256]byte
	logTable [256]byte

	// S盒及其逆
	SBOX    [256]byte
	InvSBOX [256]byte

	// 轮常量，高字节存放RC[j]
	RCON [10]uint32

	// 列混合使用的乘法表
	MUL_2  [256]byte
	MUL_3  [256]byte
	MUL_9  [256]byte
	MUL_11 [256]byte
	MUL_13 [256]byte
	MUL_14 [256]byte
)

func init() {
	// 生成指数表和对数表
	// 循环跑满256次，log[1]最终为255，保证下面255-log[i]的求逆写法对i=1也成立
	v := byte(1)
	for i := 0; i < 256; i++ {
		expTable[i] = v
		logTable[v] = byte(i)
		v = Mul(3, v)
	}

	// S盒：先求乘法逆元，再做仿射变换；0没有逆元，规定S[0]=0x63
	SBOX[0] = 0x63
	for i := 1; i < 256; i++ {
		inv := expTable[255-int(logTable[i])]
		SBOX[i] = inv ^
			bits.RotateLeft8(inv, 1) ^
			bits.RotateLeft8(inv, 2) ^
			bits.RotateLeft8(inv, 3) ^
			bits.RotateLeft8(inv, 4) ^
			0x63
	}

	// 逆S盒是S盒的置换逆
	for i := 0; i < 256; i++ {
		InvSBOX[SBOX[i]] = byte(i)
	}

	// 轮常量：RC[0]=1，之后在域上连续乘2
	rc := byte(1)
	for j := 0; j < 10; j++ {
		RCON[j] = uint32(rc) << 24
		rc = Mul(2, rc)
	}

	// 列混合的系数乘法表
	for i := 0; i < 256; i++ {
		b := byte(i)
		MUL_2[i] = Mul(2, b)
		MUL_3[i] = Mul(3, b)
		MUL_9[i] = Mul(9, b)
		MUL_11[i] = Mul(11, b)
		MUL_13[i] = Mul(13, b)
		MUL_14[i] = Mul(14, b)
	}
}

// Inverse 返回a在GF(2^8)上的乘法逆元（通过指数/对数表），a为0时返回0
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	return expTable[255-int(logTable[a])]
}
