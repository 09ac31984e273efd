package token

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"crm_xpto/internal/usecase/interfaces"
)

const tokenDigits = 12

// NumericGenerator produces the numeric access tokens printed on the
// client-portal link. Twelve digits keeps the token typeable over the phone
// while leaving the guess space large enough for a short-lived document.
type NumericGenerator struct{}

var _ interfaces.ITokenGenerator = (*NumericGenerator)(nil)

func NewNumericGenerator() *NumericGenerator {
	return &NumericGenerator{}
}

func (g *NumericGenerator) Generate() string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(tokenDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform source is broken.
		log.Printf("[token][generator] crypto source failed err=%v", err)
		return fmt.Sprintf("%0*d", tokenDigits, time.Now().UTC().UnixNano()%1_000_000_000_000)
	}
	return fmt.Sprintf("%0*d", tokenDigits, n)
}
