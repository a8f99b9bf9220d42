package codes

import "github.com/nosvasedis/iliosDB-sub004/internal/model"

// Kind distinguishes the two token classes a suffix can carry.
type Kind string

const (
	Finish Kind = "Finish"
	Stone  Kind = "Stone"
)

// Token is one entry of the variant-code vocabulary.
type Token struct {
	Code string
	Kind Kind
	Name string
}

// The vocabularies below are versioned constants, not user-editable at
// runtime. Finish codes are shared across genders; stone codes are
// gender-scoped because the men's and women's lines set different stones.
//
// "R" exists in both the finish table and the women's stone table. Decode
// resolves it as a finish because finishes are checked first; see
// DecodeSuffix.

var finishTokens = []Token{
	{Code: "X", Kind: Finish, Name: "Gold-plated"},
	{Code: "XB", Kind: Finish, Name: "Gold-plated matte"},
	{Code: "R", Kind: Finish, Name: "Rose gold-plated"},
	{Code: "D", Kind: Finish, Name: "Two-tone"},
	{Code: "OX", Kind: Finish, Name: "Oxidized"},
}

var womenStoneTokens = []Token{
	{Code: "KR", Kind: Stone, Name: "Crystal"},
	{Code: "PE", Kind: Stone, Name: "Pearl"},
	{Code: "R", Kind: Stone, Name: "Ruby"},
	{Code: "T", Kind: Stone, Name: "Turquoise"},
	{Code: "Z", Kind: Stone, Name: "Zircon"},
	{Code: "OP", Kind: Stone, Name: "Opal"},
}

var menStoneTokens = []Token{
	{Code: "KR", Kind: Stone, Name: "Crystal"},
	{Code: "ON", Kind: Stone, Name: "Onyx"},
	{Code: "AI", Kind: Stone, Name: "Hematite"},
	{Code: "TG", Kind: Stone, Name: "Tiger eye"},
	{Code: "KE", Kind: Stone, Name: "Amber"},
}

// FinishTokens returns the finish vocabulary.
func FinishTokens() []Token {
	return append([]Token(nil), finishTokens...)
}

// StoneTokens returns the stone vocabulary for a gender. Unisex resolves
// against the women's table first, then any men-only codes, so a code present
// in both keeps a single deterministic display name.
func StoneTokens(g model.Gender) []Token {
	switch g {
	case model.Men:
		return append([]Token(nil), menStoneTokens...)
	case model.Women:
		return append([]Token(nil), womenStoneTokens...)
	default:
		out := append([]Token(nil), womenStoneTokens...)
		for _, t := range menStoneTokens {
			if findByCode(out, t.Code) == nil {
				out = append(out, t)
			}
		}
		return out
	}
}

func findByCode(tokens []Token, code string) *Token {
	for i := range tokens {
		if tokens[i].Code == code {
			return &tokens[i]
		}
	}
	return nil
}

// longestPrefix returns the token whose code is the longest prefix of s,
// or nil when none matches.
func longestPrefix(tokens []Token, s string) *Token {
	var best *Token
	for i := range tokens {
		code := tokens[i].Code
		if len(s) >= len(code) && s[:len(code)] == code {
			if best == nil || len(code) > len(best.Code) {
				best = &tokens[i]
			}
		}
	}
	return best
}
