package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/laenix/gaes/aes"
	"github.com/laenix/gaes/aesni"
	"github.com/laenix/gaes/modes"
)

func main() {
	// 示例密钥（16字节 = 128位）
	key := []byte("0123456789ABCDEF")

	// 创建AES密码
	cipher, err := aes.New(key)
	if err != nil {
		log.Fatalf("创建AES失败: %v", err)
	}

	// 示例明文（48字节，为ECB/CBC对齐到块大小）
	plaintext := []byte("GAES block cipher mode demo ....48 byte payload.")
	fmt.Printf("原始明文: %s\n\n", plaintext)

	fmt.Println("=== ECB模式示例 ===")
	demonstrateECB(cipher, plaintext)

	fmt.Println("\n=== CBC模式示例 ===")
	demonstrateCBC(cipher, plaintext)

	fmt.Println("\n=== OFB模式示例 ===")
	demonstrateOFB(cipher, plaintext)

	fmt.Println("\n=== CFB模式示例 ===")
	demonstrateCFB(cipher, plaintext)

	fmt.Println("\n=== CTR模式示例 ===")
	demonstrateCTR(cipher, plaintext)

	fmt.Println("\n=== 硬件AES示例 ===")
	demonstrateAESNI(key)
}

// ECB模式示例
func demonstrateECB(cipher modes.BlockCipher, plaintext []byte) {
	ecb := modes.NewECB(cipher)

	ciphertext, err := ecb.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("ECB加密失败: %v", err)
	}
	fmt.Printf("ECB加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext))

	decrypted, err := ecb.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("ECB解密失败: %v", err)
	}
	fmt.Printf("ECB解密后的明文: %s\n", decrypted)
}

// CBC模式示例
func demonstrateCBC(cipher modes.BlockCipher, plaintext []byte) {
	iv := []byte("ABCDEF0123456789")
	cbc, err := modes.NewCBC(cipher, iv)
	if err != nil {
		log.Fatalf("创建CBC模式失败: %v", err)
	}

	ciphertext, err := cbc.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("CBC加密失败: %v", err)
	}
	fmt.Printf("CBC加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext))

	decrypted, err := cbc.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("CBC解密失败: %v", err)
	}
	fmt.Printf("CBC解密后的明文: %s\n", decrypted)
}

// OFB模式示例
func demonstrateOFB(cipher modes.BlockCipher, plaintext []byte) {
	iv := []byte("ABCDEF0123456789")
	ofb, err := modes.NewOFB(cipher, iv)
	if err != nil {
		log.Fatalf("创建OFB模式失败: %v", err)
	}

	ciphertext, err := ofb.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("OFB加密失败: %v", err)
	}
	fmt.Printf("OFB加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext))

	decrypted, err := ofb.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("OFB解密失败: %v", err)
	}
	fmt.Printf("OFB解密后的明文: %s\n", decrypted)
}

// CFB模式示例（整块反馈和CFB-8）
func demonstrateCFB(cipher modes.BlockCipher, plaintext []byte) {
	iv := []byte("ABCDEF0123456789")
	cfb, err := modes.NewCFB(cipher, iv)
	if err != nil {
		log.Fatalf("创建CFB模式失败: %v", err)
	}

	ciphertext, err := cfb.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("CFB加密失败: %v", err)
	}
	fmt.Printf("CFB加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext))

	decrypted, err := cfb.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("CFB解密失败: %v", err)
	}
	fmt.Printf("CFB解密后的明文: %s\n", decrypted)

	// 8位子块反馈
	cfb8, err := modes.NewCFB(cipher, iv)
	if err != nil {
		log.Fatalf("创建CFB模式失败: %v", err)
	}
	if _, err := cfb8.WithSegmentBits(8); err != nil {
		log.Fatalf("设置CFB-8失败: %v", err)
	}
	ciphertext8, err := cfb8.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("CFB-8加密失败: %v", err)
	}
	fmt.Printf("CFB-8加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext8))
}

// CTR模式示例
func demonstrateCTR(cipher modes.BlockCipher, plaintext []byte) {
	// 12字节nonce，剩余4字节是大端计数器
	nonce := []byte("unique nonce")
	ctr, err := modes.NewCTR(cipher, nonce)
	if err != nil {
		log.Fatalf("创建CTR模式失败: %v", err)
	}

	ciphertext, err := ctr.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("CTR加密失败: %v", err)
	}
	fmt.Printf("CTR加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext))

	decrypted, err := ctr.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("CTR解密失败: %v", err)
	}
	fmt.Printf("CTR解密后的明文: %s\n", decrypted)
}

// 硬件AES示例
func demonstrateAESNI(key []byte) {
	if !aesni.Supported() {
		fmt.Println("当前CPU不支持AES指令集，跳过")
		return
	}

	hw, err := aesni.New(key)
	if err != nil {
		log.Fatalf("创建硬件AES失败: %v", err)
	}

	block := []byte("0123456789abcdef")
	ciphertext, err := hw.Encrypt(block)
	if err != nil {
		log.Fatalf("硬件加密失败: %v", err)
	}
	fmt.Printf("硬件加密后的密文 (Hex): %s\n", hex.EncodeToString(ciphertext))

	decrypted, err := hw.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("硬件解密失败: %v", err)
	}
	fmt.Printf("硬件解密后的明文: %s\n", decrypted)
}
