package modes

import (
	"github.com/laenix/gaes/modes/internal"
)

// CFB 结构体实现了密码反馈(CFB)模式
// 默认为整块反馈（位宽8*B），WithSegmentBits可以切换到CFB-n子块反馈
type CFB struct {
	cipher BlockCipher
	iv     []byte
	// 每个分段的字节数，整块反馈时等于块大小
	segmentSize int
}

// NewCFB 创建一个新的整块反馈CFB模式封装器
func NewCFB(cipher BlockCipher, iv []byte) (*CFB, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, ErrInvalidIV
	}
	return &CFB{
		cipher:      cipher,
		iv:          internal.DuplicateSlice(iv),
		segmentSize: blockSize,
	}, nil
}

// WithSegmentBits 设置CFB-n的反馈位宽n
// n必须是8的正整数倍且不超过块位宽8*B
func (c *CFB) WithSegmentBits(n int) (*CFB, error) {
	if n <= 0 || n%8 != 0 || n > 8*c.cipher.BlockSize() {
		return nil, ErrInvalidSegment
	}
	c.segmentSize = n / 8
	return c, nil
}

// Encrypt 使用CFB模式加密数据（任意长度，不需要填充）
// 每个分段：T = E(寄存器)，密文分段 = 明文分段 ^ T的前n/8字节，
// 寄存器左移n/8字节后在低端补上密文分段
func (c *CFB) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	ciphertext := make([]byte, len(plaintext))

	register := internal.DuplicateSlice(c.iv)
	for i := 0; i < len(plaintext); i += c.segmentSize {
		keystream, err := c.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}

		n := c.segmentSize
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}
		internal.XORBytes(ciphertext[i:i+n], plaintext[i:i+n], keystream[:n])

		// 加密方向反馈的是刚产生的密文分段
		c.shiftIn(register, ciphertext[i:i+n], blockSize)
	}
	return ciphertext, nil
}

// Decrypt 使用CFB模式解密数据
// 两个方向都使用E；解密方向反馈的是输入本身（即密文分段）
func (c *CFB) Decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	plaintext := make([]byte, len(ciphertext))

	register := internal.DuplicateSlice(c.iv)
	for i := 0; i < len(ciphertext); i += c.segmentSize {
		keystream, err := c.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}

		n := c.segmentSize
		if i+n > len(ciphertext) {
			n = len(ciphertext) - i
		}
		internal.XORBytes(plaintext[i:i+n], ciphertext[i:i+n], keystream[:n])

		c.shiftIn(register, ciphertext[i:i+n], blockSize)
	}
	return plaintext, nil
}

// shiftIn 寄存器左移segmentSize字节并在低端补上反馈分段
func (c *CFB) shiftIn(register, segment []byte, blockSize int) {
	if c.segmentSize < blockSize {
		copy(register, register[c.segmentSize:])
		copy(register[blockSize-c.segmentSize:], segment)
	} else {
		copy(register, segment)
	}
}

// BlockSize 返回块大小
func (c *CFB) BlockSize() int {
	return c.cipher.BlockSize()
}
