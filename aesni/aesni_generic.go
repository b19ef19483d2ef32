//go:build !amd64

package aesni

// Supported 在非amd64平台上恒为false
func Supported() bool {
	return false
}

// New 在非amd64平台上总是拒绝构造
func New(key []byte) (*AESNI, error) {
	return nil, ErrNotSupported
}

// Encrypt 在非amd64平台上不可用
func (a *AESNI) Encrypt(plaintext []byte) ([]byte, error) {
	return nil, ErrNotSupported
}

// Decrypt 在非amd64平台上不可用
func (a *AESNI) Decrypt(ciphertext []byte) ([]byte, error) {
	return nil, ErrNotSupported
}
