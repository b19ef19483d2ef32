package modes

import (
	"github.com/laenix/gaes/modes/internal"
)

// OFB 结构体实现了输出反馈(OFB)模式
type OFB struct {
	cipher BlockCipher
	iv     []byte
}

// NewOFB 创建一个新的OFB模式封装器
func NewOFB(cipher BlockCipher, iv []byte) (*OFB, error) {
	if len(iv) != cipher.BlockSize() {
		return nil, ErrInvalidIV
	}
	return &OFB{
		cipher: cipher,
		iv:     internal.DuplicateSlice(iv),
	}, nil
}

// Encrypt 使用OFB模式加密数据（任意长度，不需要填充）
// 密钥流 S_i = E(S_{i-1})，S_0 = E(IV)，输出 = 输入 ^ S_i
func (o *OFB) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := o.cipher.BlockSize()
	ciphertext := make([]byte, len(plaintext))

	register := internal.DuplicateSlice(o.iv)
	for i := 0; i < len(plaintext); i += blockSize {
		keystream, err := o.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}

		n := blockSize
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}
		internal.XORBytes(ciphertext[i:i+n], plaintext[i:i+n], keystream[:n])

		// 反馈的是密钥流本身，而不是密文
		copy(register, keystream)
	}
	return ciphertext, nil
}

// Decrypt 使用OFB模式解密数据（OFB的解密与加密相同）
func (o *OFB) Decrypt(ciphertext []byte) ([]byte, error) {
	return o.Encrypt(ciphertext)
}

// BlockSize 返回块大小
func (o *OFB) BlockSize() int {
	return o.cipher.BlockSize()
}
