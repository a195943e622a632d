// Package referralcode gera códigos de indicação curtos e legíveis em
// voz alta: o alfabeto exclui caracteres ambíguos (0/O, 1/I/L).
package referralcode

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	// Alphabet sem 0, 1, I, L e O.
	Alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

	DefaultLength = 6

	// FallbackLength é usado após esgotar as tentativas de colisão:
	// um código mais longo e totalmente aleatório.
	FallbackLength = 8
)

var (
	basicFormat  = regexp.MustCompile(`^[A-Z0-9-]{6,10}$`)
	prefixFormat = regexp.MustCompile(`^[A-Z]{1,2}-[A-Z0-9]{3,7}$`)
)

type Options struct {
	// ClientName, quando presente com UsePrefix, vira até duas iniciais
	// maiúsculas antes do hífen.
	ClientName string
	UsePrefix  bool
	// Length é o comprimento alvo do código; zero usa DefaultLength.
	Length int
}

// Generate produz um código de indicação. A unicidade global não é
// garantida aqui: quem chama precisa checar colisão e tentar de novo.
func Generate(opts Options) string {
	length := opts.Length
	if length <= 0 {
		length = DefaultLength
	}

	if opts.UsePrefix && opts.ClientName != "" {
		initials := extractInitials(opts.ClientName)
		if initials != "" {
			// Duas iniciais + hífen ocupam três posições do alvo.
			suffixLen := length - 3
			if suffixLen < 1 {
				suffixLen = 1
			}
			return initials + "-" + randomString(suffixLen)
		}
	}

	return randomString(length)
}

// IsValid aceita o formato básico ou o formato com prefixo de iniciais.
func IsValid(code string) bool {
	return basicFormat.MatchString(code) || prefixFormat.MatchString(code)
}

// Parse separa o prefixo de iniciais do sufixo aleatório, quando houver.
func Parse(code string) (prefix, suffix string) {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", code
}

func extractInitials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			initials = append(initials, r)
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

func randomString(n int) string {
	max := big.NewInt(int64(len(Alphabet)))

	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand só falha se a fonte do sistema estiver
			// indisponível; não há como seguir sem aleatoriedade.
			panic(err)
		}
		b[i] = Alphabet[idx.Int64()]
	}
	return string(b)
}
