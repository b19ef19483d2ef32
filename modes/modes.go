// Package modes 实现分组密码的工作模式：ECB、CBC、OFB、CFB/CFB-n、CTR。
// 模式层只依赖BlockCipher接口，对块大小是通用的，不绑定具体算法。
package modes

import "errors"

// 常见错误
var (
	ErrInvalidBlockSize = errors.New("无效的块大小")
	ErrInvalidDataSize  = errors.New("数据长度必须是块大小的正整数倍")
	ErrInvalidIV        = errors.New("无效的初始化向量")
	ErrInvalidNonce     = errors.New("nonce长度必须小于块大小")
	ErrInvalidSegment   = errors.New("分段位宽必须是8的正整数倍且不超过块位宽")
	ErrCounterOverflow  = errors.New("计数器溢出")
)

// BlockCipher 接口定义块加密算法应实现的方法
type BlockCipher interface {
	// Encrypt 加密单个块
	Encrypt([]byte) ([]byte, error)
	// Decrypt 解密单个块
	Decrypt([]byte) ([]byte, error)
	// BlockSize 返回块大小（字节）
	BlockSize() int
}

// Mode 接口定义了所有工作模式共有的方法
type Mode interface {
	// Encrypt 加密数据
	Encrypt([]byte) ([]byte, error)
	// Decrypt 解密数据
	Decrypt([]byte) ([]byte, error)
	// BlockSize 返回模式使用的块大小
	BlockSize() int
}
