// Package aes 实现纯软件的AES分组密码，支持128/192/256位密钥。
package aes

import (
	"errors"

	"github.com/laenix/gaes/aes/internal"
)

const (
	// BlockSize AES的块大小（字节）
	BlockSize = 16

	// AES-128, AES-192, AES-256 的密钥长度（字节）
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

var (
	ErrInvalidKeySize   = errors.New("无效的密钥长度，必须是16, 24或32字节")
	ErrInvalidBlockSize = errors.New("数据块长度必须为16字节")
)

// AES 结构体定义AES密码
// 密钥扩展在构造时完成一次，之后只读，可以安全地并发调用
type AES struct {
	roundKeys []uint32 // 扩展密钥，每个轮密钥4个大端字
	rounds    int      // 轮数：AES-128为10，AES-192为12，AES-256为14
}

// New 创建一个新的AES实例
// 密钥长度决定变体：16字节为AES-128，24字节为AES-192，32字节为AES-256
func New(key []byte) (*AES, error) {
	var rounds int
	switch len(key) {
	case KeySize128:
		rounds = 10
	case KeySize192:
		rounds = 12
	case KeySize256:
		rounds = 14
	default:
		return nil, ErrInvalidKeySize
	}

	a := &AES{rounds: rounds}
	a.expandKey(key)
	return a, nil
}

// expandKey 生成AES的扩展密钥
//
// 生成4*(rounds+1)个字w[i]：
//   - i < nk 时直接取密钥字
//   - i % nk == 0 时 w[i] = w[i-nk] ^ SubWord(RotWord(w[i-1])) ^ RCON[i/nk-1]
//   - nk > 6 且 i % nk == 4 时 w[i] = w[i-nk] ^ SubWord(w[i-1])（仅AES-256）
//   - 其余 w[i] = w[i-nk] ^ w[i-1]
func (a *AES) expandKey(key []byte) {
	nk := len(key) / 4
	a.roundKeys = make([]uint32, (a.rounds+1)*4)

	for i := 0; i < nk; i++ {
		a.roundKeys[i] = uint32(key[4*i])<<24 |
			uint32(key[4*i+1])<<16 |
			uint32(key[4*i+2])<<8 |
			uint32(key[4*i+3])
	}

	for i := nk; i < len(a.roundKeys); i++ {
		temp := a.roundKeys[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ internal.RCON[i/nk-1]
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		a.roundKeys[i] = a.roundKeys[i-nk] ^ temp
	}
}

// Encrypt 加密单个数据块（16字节）
func (a *AES) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, ErrInvalidBlockSize
	}

	state := make([]byte, BlockSize)
	copy(state, plaintext)

	addRoundKey(state, a.roundKeys[0:4])
	for round := 1; round < a.rounds; round++ {
		subBytes(state)
		shiftRows(state)
		mixColumns(state)
		addRoundKey(state, a.roundKeys[round*4:round*4+4])
	}
	// 最后一轮没有列混合
	subBytes(state)
	shiftRows(state)
	addRoundKey(state, a.roundKeys[a.rounds*4:a.rounds*4+4])

	return state, nil
}

// Decrypt 解密单个数据块（16字节）
func (a *AES) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockSize {
		return nil, ErrInvalidBlockSize
	}

	state := make([]byte, BlockSize)
	copy(state, ciphertext)

	addRoundKey(state, a.roundKeys[a.rounds*4:a.rounds*4+4])
	invShiftRows(state)
	invSubBytes(state)
	for round := a.rounds - 1; round > 0; round-- {
		addRoundKey(state, a.roundKeys[round*4:round*4+4])
		invMixColumns(state)
		invShiftRows(state)
		invSubBytes(state)
	}
	addRoundKey(state, a.roundKeys[0:4])

	return state, nil
}

// BlockSize 返回AES的块大小（16字节）
func (a *AES) BlockSize() int {
	return BlockSize
}

// 状态以列优先方式存储：字节i位于第i%4行、第i/4列
// [ 0, 4, 8, 12,
//   1, 5, 9, 13,
//   2, 6, 10, 14,
//   3, 7, 11, 15 ]

// subBytes 对状态每个字节做S盒替代
func subBytes(state []byte) {
	for i := range state {
		state[i] = internal.SBOX[state[i]]
	}
}

// invSubBytes 对状态每个字节做逆S盒替代
func invSubBytes(state []byte) {
	for i := range state {
		state[i] = internal.InvSBOX[state[i]]
	}
}

// shiftRows 行移位：第r行循环左移r个位置
// 等价的下标恒等式：new[4j+i] = old[(4j+5i) mod 16]
func shiftRows(state []byte) {
	var tmp [BlockSize]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			tmp[4*j+i] = state[(4*j+5*i)%16]
		}
	}
	copy(state, tmp[:])
}

// invShiftRows 逆行移位，系数13即-3 mod 16
func invShiftRows(state []byte) {
	var tmp [BlockSize]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			tmp[4*j+i] = state[(4*j+13*i)%16]
		}
	}
	copy(state, tmp[:])
}

// mixColumns 列混合：每列左乘首行为[2,3,1,1]的循环矩阵
func mixColumns(state []byte) {
	for c := 0; c < 4; c++ {
		col := c * 4
		a0, a1, a2, a3 := state[col], state[col+1], state[col+2], state[col+3]
		state[col] = internal.MUL_2[a0] ^ internal.MUL_3[a1] ^ a2 ^ a3
		state[col+1] = a0 ^ internal.MUL_2[a1] ^ internal.MUL_3[a2] ^ a3
		state[col+2] = a0 ^ a1 ^ internal.MUL_2[a2] ^ internal.MUL_3[a3]
		state[col+3] = internal.MUL_3[a0] ^ a1 ^ a2 ^ internal.MUL_2[a3]
	}
}

// invMixColumns 逆列混合，矩阵首行为[14,11,13,9]
func invMixColumns(state []byte) {
	for c := 0; c < 4; c++ {
		col := c * 4
		a0, a1, a2, a3 := state[col], state[col+1], state[col+2], state[col+3]
		state[col] = internal.MUL_14[a0] ^ internal.MUL_11[a1] ^ internal.MUL_13[a2] ^ internal.MUL_9[a3]
		state[col+1] = internal.MUL_9[a0] ^ internal.MUL_14[a1] ^ internal.MUL_11[a2] ^ internal.MUL_13[a3]
		state[col+2] = internal.MUL_13[a0] ^ internal.MUL_9[a1] ^ internal.MUL_14[a2] ^ internal.MUL_11[a3]
		state[col+3] = internal.MUL_11[a0] ^ internal.MUL_13[a1] ^ internal.MUL_9[a2] ^ internal.MUL_14[a3]
	}
}

// addRoundKey 轮密钥加：状态与4个大端密钥字逐字节异或
func addRoundKey(state []byte, words []uint32) {
	for i := 0; i < 4; i++ {
		k := words[i]
		col := i * 4
		state[col] ^= byte(k >> 24)
		state[col+1] ^= byte(k >> 16)
		state[col+2] ^= byte(k >> 8)
		state[col+3] ^= byte(k)
	}
}

// rotWord 字的循环左移一个字节
func rotWord(w uint32) uint32 {
	return (w << 8) | (w >> 24)
}

// subWord 对字的每个字节做S盒替代
func subWord(w uint32) uint32 {
	return uint32(internal.SBOX[byte(w>>24)])<<24 |
		uint32(internal.SBOX[byte(w>>16)])<<16 |
		uint32(internal.SBOX[byte(w>>8)])<<8 |
		uint32(internal.SBOX[byte(w)])
}
