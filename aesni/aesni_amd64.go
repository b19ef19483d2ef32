//go:build amd64

package aesni

import "golang.org/x/sys/cpu"

// Supported 报告CPU是否支持AES指令集（CPUID叶1的ECX第25位）
func Supported() bool {
	return cpu.X86.HasAES
}

// New 创建一个新的硬件AES实例
// 仅接受16字节密钥；24/32字节密钥属于硬件路径未覆盖的变体，拒绝构造
func New(key []byte) (*AESNI, error) {
	if !Supported() {
		return nil, ErrNotSupported
	}
	switch len(key) {
	case 16:
	case 24, 32:
		return nil, ErrUnsupportedKeySize
	default:
		return nil, ErrInvalidKeySize
	}

	a := &AESNI{}
	expandKey128(&key[0], &a.roundKeys[0])
	expandInvKey128(&a.roundKeys[0], &a.invRoundKeys[0])
	return a, nil
}

// Encrypt 加密单个数据块（16字节）
func (a *AESNI) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, ErrInvalidBlockSize
	}
	out := make([]byte, BlockSize)
	encryptBlock128(&a.roundKeys[0], &out[0], &plaintext[0])
	return out, nil
}

// Decrypt 解密单个数据块（16字节）
func (a *AESNI) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockSize {
		return nil, ErrInvalidBlockSize
	}
	out := make([]byte, BlockSize)
	decryptBlock128(&a.invRoundKeys[0], &out[0], &ciphertext[0])
	return out, nil
}

//go:noescape
func expandKey128(key *byte, rk *byte)

//go:noescape
func expandInvKey128(rk *byte, irk *byte)

//go:noescape
func encryptBlock128(rk *byte, dst *byte, src *byte)

//go:noescape
func decryptBlock128(irk *byte, dst *byte, src *byte)
