// Package aesni 通过CPU的AES指令集实现AES-128分组密码。
// 构造前必须用Supported()确认指令集可用。
package aesni

import "errors"

// BlockSize AES的块大小（字节）
const BlockSize = 16

var (
	ErrNotSupported       = errors.New("CPU不支持AES指令集")
	ErrUnsupportedKeySize = errors.New("硬件路径仅支持16字节密钥")
	ErrInvalidKeySize     = errors.New("无效的密钥长度，必须是16, 24或32字节")
	ErrInvalidBlockSize   = errors.New("数据块长度必须为16字节")
)

// AESNI 结构体定义硬件AES-128密码
// roundKeys为正向扩展密钥，invRoundKeys为解密用的等价逆扩展密钥：
// 轮密钥1..9经过aesimc变换，轮密钥0和10原样复制
// 两者各为连续的176字节（11个16字节轮密钥），构造后只读
type AESNI struct {
	roundKeys    [176]byte
	invRoundKeys [176]byte
}

// BlockSize 返回块大小（16字节）
func (a *AESNI) BlockSize() int {
	return BlockSize
}
