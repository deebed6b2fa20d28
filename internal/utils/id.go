package utils

import (
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const (
	letterIdxBits = 6
	letterIdxMask = 1<<letterIdxBits - 1
	letterIdxMax  = 63 / letterIdxBits
)

var (
	idRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	idMu   sync.Mutex
)

// RandStringBytesMaskImpr 生成 n 位随机短串（实体短 id 后缀用）
func RandStringBytesMaskImpr(n int) string {
	idMu.Lock()
	defer idMu.Unlock()

	b := make([]byte, n)
	for i, cache, remain := n-1, idRand.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = idRand.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return string(b)
}

// Slugify 把名称压成小写短横线风格，用于可读 id 前缀
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// NewEntityID 生成 "slug-随机8位" 形式的实体 id。
func NewEntityID(name string) string {
	slug := Slugify(name)
	if slug == "" {
		return RandStringBytesMaskImpr(8)
	}
	return slug + "-" + RandStringBytesMaskImpr(8)
}
