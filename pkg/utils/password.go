package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 生成 bcrypt 哈希。bcrypt 只在口令超 72 字节时报错，
// 此时返回空串，CheckPassword 对空哈希永远不匹配。
func HashPassword(pw string) string {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
