package helpers

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/regime-co/regime-api/libs/go/constants"
)

// codeAlphabet leaves out 0/O and 1/I so codes survive being read aloud
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, b := range buf {
		sb.WriteByte(codeAlphabet[int(b)%len(codeAlphabet)])
	}
	return sb.String(), nil
}

// GenerateOrderNumber returns a customer facing order number such as RG-20261019-7KQ2MX
func GenerateOrderNumber(now time.Time) (string, error) {
	suffix, err := randomCode(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", constants.OrderNumberPrefix, now.UTC().Format("20060102"), suffix), nil
}

// GenerateGiftCode returns a gift card code in the form GIFT-XXXX-XXXX
func GenerateGiftCode() (string, error) {
	code, err := randomCode(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", constants.GiftCodePrefix, code[:4], code[4:]), nil
}

// NormalizeCode upper-cases and trims a customer-entered code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsGiftCode reports whether s has the gift card code shape
func IsGiftCode(s string) bool {
	parts := strings.Split(NormalizeCode(s), "-")
	if len(parts) != 3 || parts[0] != constants.GiftCodePrefix {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 4 {
			return false
		}
		for _, r := range p {
			if !strings.ContainsRune(codeAlphabet, r) {
				return false
			}
		}
	}
	return true
}
