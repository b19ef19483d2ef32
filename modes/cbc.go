package modes

import (
	"github.com/laenix/gaes/modes/internal"
)

// CBC 结构体实现了密码块链接(CBC)模式
type CBC struct {
	cipher BlockCipher
	iv     []byte
}

// NewCBC 创建一个新的CBC模式封装器
func NewCBC(cipher BlockCipher, iv []byte) (*CBC, error) {
	if len(iv) != cipher.BlockSize() {
		return nil, ErrInvalidIV
	}
	return &CBC{
		cipher: cipher,
		iv:     internal.DuplicateSlice(iv),
	}, nil
}

// Encrypt 使用CBC模式加密数据（要求输入长度为块大小的正整数倍）
// C_0 = E(P_0 ^ IV)，C_i = E(P_i ^ C_{i-1})
func (c *CBC) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	if len(plaintext) == 0 || len(plaintext)%blockSize != 0 {
		return nil, ErrInvalidDataSize
	}

	prev := internal.DuplicateSlice(c.iv)
	ciphertext := make([]byte, len(plaintext))
	block := make([]byte, blockSize)

	for i := 0; i < len(plaintext); i += blockSize {
		internal.XORBytes(block, plaintext[i:i+blockSize], prev)
		encrypted, err := c.cipher.Encrypt(block)
		if err != nil {
			return nil, err
		}
		copy(ciphertext[i:i+blockSize], encrypted)
		copy(prev, encrypted)
	}
	return ciphertext, nil
}

// Decrypt 使用CBC模式解密数据（要求输入长度为块大小的正整数倍）
// P_0 = D(C_0) ^ IV，P_i = D(C_i) ^ C_{i-1}
func (c *CBC) Decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, ErrInvalidDataSize
	}

	prev := internal.DuplicateSlice(c.iv)
	plaintext := make([]byte, len(ciphertext))

	for i := 0; i < len(ciphertext); i += blockSize {
		decrypted, err := c.cipher.Decrypt(ciphertext[i : i+blockSize])
		if err != nil {
			return nil, err
		}
		internal.XORBytes(plaintext[i:i+blockSize], decrypted, prev)
		copy(prev, ciphertext[i:i+blockSize])
	}
	return plaintext, nil
}

// BlockSize 返回块大小
func (c *CBC) BlockSize() int {
	return c.cipher.BlockSize()
}
