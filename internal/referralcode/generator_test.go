package referralcode

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultLength(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := Generate(Options{})
		assert.Len(t, code, DefaultLength)
		assertAlphabetOnly(t, code)
	}
}

func TestGenerateExcludesAmbiguousChars(t *testing.T) {
	assert.NotContains(t, Alphabet, "0")
	assert.NotContains(t, Alphabet, "O")
	assert.NotContains(t, Alphabet, "1")
	assert.NotContains(t, Alphabet, "I")
	assert.NotContains(t, Alphabet, "L")

	for i := 0; i < 200; i++ {
		code := Generate(Options{Length: 10})
		for _, forbidden := range []string{"0", "O", "1", "I", "L"} {
			assert.NotContains(t, code, forbidden)
		}
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{1,2}-[A-Z0-9]{3,4}$`)

	for i := 0; i < 50; i++ {
		code := Generate(Options{
			ClientName: "Maria Silva",
			UsePrefix:  true,
			Length:     6,
		})
		require.True(t, pattern.MatchString(code), "unexpected code %q", code)
		assert.True(t, strings.HasPrefix(code, "MS-"))
	}
}

func TestGenerateWithSingleWordName(t *testing.T) {
	code := Generate(Options{ClientName: "Ana", UsePrefix: true, Length: 6})
	require.True(t, strings.HasPrefix(code, "A-"))

	_, suffix := Parse(code)
	assert.Len(t, suffix, 3)
	assertAlphabetOnly(t, suffix)
}

func TestGenerateWithoutPrefixIgnoresName(t *testing.T) {
	code := Generate(Options{ClientName: "Maria Silva", UsePrefix: false})
	assert.NotContains(t, code, "-")
	assert.Len(t, code, DefaultLength)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("MS-234"))
	assert.True(t, IsValid("A-XYZ9"))
	assert.True(t, IsValid("ABC234"))
	assert.True(t, IsValid("ABCD2345"))

	assert.False(t, IsValid("ab-123"))
	assert.False(t, IsValid("TOOSHRT-EXTRALONG"))
	assert.False(t, IsValid("abc"))
	assert.False(t, IsValid(""))
}

func TestParse(t *testing.T) {
	prefix, suffix := Parse("MS-K2P")
	assert.Equal(t, "MS", prefix)
	assert.Equal(t, "K2P", suffix)

	prefix, suffix = Parse("ABC234")
	assert.Empty(t, prefix)
	assert.Equal(t, "ABC234", suffix)
}

func assertAlphabetOnly(t *testing.T, code string) {
	t.Helper()
	for _, r := range code {
		assert.Contains(t, Alphabet, string(r))
	}
}
