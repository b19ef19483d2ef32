package modes

import (
	"github.com/laenix/gaes/modes/internal"
)

// CTR 结构体实现了计数器(CTR)模式
// 计数器块的前len(nonce)字节是调用方提供的nonce，
// 其余字节是从零开始的大端计数器
type CTR struct {
	cipher   BlockCipher
	nonce    []byte
	nonceLen int
}

// NewCTR 创建一个新的CTR模式封装器
// nonce长度必须小于块大小，剩余空间留给计数器
func NewCTR(cipher BlockCipher, nonce []byte) (*CTR, error) {
	if len(nonce) >= cipher.BlockSize() {
		return nil, ErrInvalidNonce
	}
	return &CTR{
		cipher:   cipher,
		nonce:    internal.DuplicateSlice(nonce),
		nonceLen: len(nonce),
	}, nil
}

// Encrypt 使用CTR模式加密数据（任意长度，不需要填充）
// 每个块：密钥流 = E(计数器块)，输出 = 输入 ^ 密钥流，然后计数器加一
// 每次调用都从零计数器开始，同样的输入产生同样的输出
// 计数器区域回绕到全零时返回ErrCounterOverflow
func (c *CTR) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	ciphertext := make([]byte, len(plaintext))

	counter := make([]byte, blockSize)
	copy(counter, c.nonce)

	for i := 0; i < len(plaintext); {
		keystream, err := c.cipher.Encrypt(counter)
		if err != nil {
			return nil, err
		}

		n := blockSize
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}
		internal.XORBytes(ciphertext[i:i+n], plaintext[i:i+n], keystream[:n])
		i += n

		// 还有剩余输入时才推进计数器，恰好用尽计数空间的消息可以成功
		if i < len(plaintext) {
			if internal.IncrementCounter(counter, c.nonceLen) {
				return nil, ErrCounterOverflow
			}
		}
	}
	return ciphertext, nil
}

// Decrypt 使用CTR模式解密数据（CTR的解密与加密相同）
func (c *CTR) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.Encrypt(ciphertext)
}

// BlockSize 返回块大小
func (c *CTR) BlockSize() int {
	return c.cipher.BlockSize()
}
