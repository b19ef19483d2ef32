package modes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/laenix/gaes/aes"
	"github.com/laenix/gaes/modes"
)

// 模式层与真实AES组合的往返测试

func newAES(t *testing.T) *aes.AES {
	t.Helper()
	cipher, err := aes.New([]byte("0123456789ABCDEF"))
	if err != nil {
		t.Fatalf("创建AES失败: %v", err)
	}
	return cipher
}

func TestAESModeRoundTrips(t *testing.T) {
	cipher := newAES(t)
	iv := seq(16)
	aligned := seq(48)
	ragged := seq(50)

	t.Run("ECB", func(t *testing.T) {
		ecb := modes.NewECB(cipher)
		ct, err := ecb.Encrypt(aligned)
		if err != nil {
			t.Fatalf("加密失败: %v", err)
		}
		pt, err := ecb.Decrypt(ct)
		if err != nil {
			t.Fatalf("解密失败: %v", err)
		}
		if diff := cmp.Diff(aligned, pt); diff != "" {
			t.Errorf("往返不一致:\n%s", diff)
		}
	})

	t.Run("CBC", func(t *testing.T) {
		cbc, err := modes.NewCBC(cipher, iv)
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		ct, err := cbc.Encrypt(aligned)
		if err != nil {
			t.Fatalf("加密失败: %v", err)
		}
		pt, err := cbc.Decrypt(ct)
		if err != nil {
			t.Fatalf("解密失败: %v", err)
		}
		if diff := cmp.Diff(aligned, pt); diff != "" {
			t.Errorf("往返不一致:\n%s", diff)
		}
	})

	t.Run("OFB", func(t *testing.T) {
		ofb, err := modes.NewOFB(cipher, iv)
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		ct, err := ofb.Encrypt(ragged)
		if err != nil {
			t.Fatalf("加密失败: %v", err)
		}
		pt, err := ofb.Decrypt(ct)
		if err != nil {
			t.Fatalf("解密失败: %v", err)
		}
		if diff := cmp.Diff(ragged, pt); diff != "" {
			t.Errorf("往返不一致:\n%s", diff)
		}
	})

	t.Run("CFB", func(t *testing.T) {
		cfb, err := modes.NewCFB(cipher, iv)
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		ct, err := cfb.Encrypt(ragged)
		if err != nil {
			t.Fatalf("加密失败: %v", err)
		}
		pt, err := cfb.Decrypt(ct)
		if err != nil {
			t.Fatalf("解密失败: %v", err)
		}
		if diff := cmp.Diff(ragged, pt); diff != "" {
			t.Errorf("往返不一致:\n%s", diff)
		}
	})

	t.Run("CTR", func(t *testing.T) {
		ctr, err := modes.NewCTR(cipher, seq(5))
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		ct, err := ctr.Encrypt(ragged)
		if err != nil {
			t.Fatalf("加密失败: %v", err)
		}
		pt, err := ctr.Decrypt(ct)
		if err != nil {
			t.Fatalf("解密失败: %v", err)
		}
		if diff := cmp.Diff(ragged, pt); diff != "" {
			t.Errorf("往返不一致:\n%s", diff)
		}
	})
}

func TestAESCFBSegments(t *testing.T) {
	// AES块宽128位下的CFB-8、CFB-64、CFB-128
	cipher := newAES(t)
	iv := seq(16)
	plaintext := seq(37)

	for _, n := range []int{8, 64, 128} {
		enc, err := modes.NewCFB(cipher, iv)
		if err != nil {
			t.Fatalf("创建CFB失败: %v", err)
		}
		if _, err := enc.WithSegmentBits(n); err != nil {
			t.Fatalf("位宽%d: %v", n, err)
		}
		ct, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("位宽%d: 加密失败: %v", n, err)
		}

		dec, err := modes.NewCFB(cipher, iv)
		if err != nil {
			t.Fatalf("创建CFB失败: %v", err)
		}
		if _, err := dec.WithSegmentBits(n); err != nil {
			t.Fatalf("位宽%d: %v", n, err)
		}
		pt, err := dec.Decrypt(ct)
		if err != nil {
			t.Fatalf("位宽%d: 解密失败: %v", n, err)
		}
		if diff := cmp.Diff(plaintext, pt); diff != "" {
			t.Errorf("位宽%d: 往返不一致:\n%s", n, diff)
		}
	}
}

func TestAESCFBFullBlockEqualsCFB128(t *testing.T) {
	// 整块反馈与显式CFB-128应产生相同密文
	cipher := newAES(t)
	iv := seq(16)
	plaintext := seq(64)

	full, err := modes.NewCFB(cipher, iv)
	if err != nil {
		t.Fatalf("创建CFB失败: %v", err)
	}
	fullCT, err := full.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("加密失败: %v", err)
	}

	sub, err := modes.NewCFB(cipher, iv)
	if err != nil {
		t.Fatalf("创建CFB失败: %v", err)
	}
	if _, err := sub.WithSegmentBits(128); err != nil {
		t.Fatalf("位宽128: %v", err)
	}
	subCT, err := sub.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("加密失败: %v", err)
	}

	if diff := cmp.Diff(fullCT, subCT); diff != "" {
		t.Errorf("整块CFB与CFB-128不一致:\n%s", diff)
	}
}
