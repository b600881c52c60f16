package crypto

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	EncoderPlain  = "plain"
	EncoderBcrypt = "bcrypt"
)

// PasswordEncoder 密码编码与比对
type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}

// NewPasswordEncoder 按名称创建编码器
func NewPasswordEncoder(name string) (PasswordEncoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncoderPlain:
		return plainEncoder{}, nil
	case EncoderBcrypt:
		return bcryptEncoder{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unsupported password encoder: %s", name)
	}
}

// plainEncoder 明文存储，逐字节比较
type plainEncoder struct{}

func (plainEncoder) Encode(raw string) (string, error) {
	return raw, nil
}

func (plainEncoder) Matches(raw, encoded string) bool {
	return subtle.ConstantTimeCompare([]byte(raw), []byte(encoded)) == 1
}

type bcryptEncoder struct {
	cost int
}

// Encode 哈希密码 (bcrypt)
func (e bcryptEncoder) Encode(raw string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Matches 验证密码
func (bcryptEncoder) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}
