package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// GenerateOTP returns a numeric code of the given length. Each digit is
// drawn independently, so leading zeros are as likely as any other digit.
func GenerateOTP(digits int) (string, error) {
	var builder strings.Builder
	ten := big.NewInt(10)
	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		builder.WriteByte(byte('0' + n.Int64()))
	}
	return builder.String(), nil
}
