package register_customer

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// maxCodeAttempts количество попыток подобрать свободный реферальный код
const maxCodeAttempts = 10

// RandomCodeGenerator генерирует коды из A-Z0-9 криптостойким генератором
type RandomCodeGenerator struct{}

// Generate возвращает новый код длиной domain.ReferralCodeLength
func (RandomCodeGenerator) Generate() (string, error) {
	alphabet := domain.ReferralCodeAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, domain.ReferralCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate referral code: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}

// BcryptHasher хэширует пароли bcrypt с солью
type BcryptHasher struct {
	Cost int
}

// Hash возвращает bcrypt-хэш пароля
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
