package lexer

import (
	"sort"

	"github.com/csfmt/unparen/syntax"
)

// keywords is the sorted reserved-keyword table for binary search.
// This slice must remain sorted by text.
var keywords = []struct {
	text string
	kind syntax.TokenKind
}{
	{"as", syntax.TokKwAs},
	{"base", syntax.TokKwBase},
	{"bool", syntax.TokKwBool},
	{"break", syntax.TokKwBreak},
	{"byte", syntax.TokKwByte},
	{"case", syntax.TokKwCase},
	{"catch", syntax.TokKwCatch},
	{"char", syntax.TokKwChar},
	{"checked", syntax.TokKwChecked},
	{"continue", syntax.TokKwContinue},
	{"decimal", syntax.TokKwDecimal},
	{"default", syntax.TokKwDefault},
	{"delegate", syntax.TokKwDelegate},
	{"do", syntax.TokKwDo},
	{"double", syntax.TokKwDouble},
	{"else", syntax.TokKwElse},
	{"false", syntax.TokKwFalse},
	{"finally", syntax.TokKwFinally},
	{"float", syntax.TokKwFloat},
	{"for", syntax.TokKwFor},
	{"foreach", syntax.TokKwForeach},
	{"if", syntax.TokKwIf},
	{"in", syntax.TokKwIn},
	{"int", syntax.TokKwInt},
	{"is", syntax.TokKwIs},
	{"lock", syntax.TokKwLock},
	{"long", syntax.TokKwLong},
	{"new", syntax.TokKwNew},
	{"null", syntax.TokKwNull},
	{"object", syntax.TokKwObject},
	{"out", syntax.TokKwOut},
	{"ref", syntax.TokKwRef},
	{"return", syntax.TokKwReturn},
	{"sbyte", syntax.TokKwSbyte},
	{"short", syntax.TokKwShort},
	{"sizeof", syntax.TokKwSizeof},
	{"stackalloc", syntax.TokKwStackalloc},
	{"string", syntax.TokKwString},
	{"switch", syntax.TokKwSwitch},
	{"this", syntax.TokKwThis},
	{"throw", syntax.TokKwThrow},
	{"true", syntax.TokKwTrue},
	{"try", syntax.TokKwTry},
	{"typeof", syntax.TokKwTypeof},
	{"uint", syntax.TokKwUint},
	{"ulong", syntax.TokKwUlong},
	{"unchecked", syntax.TokKwUnchecked},
	{"ushort", syntax.TokKwUshort},
	{"using", syntax.TokKwUsing},
	{"void", syntax.TokKwVoid},
	{"while", syntax.TokKwWhile},
}

// LookupKeyword returns the token kind for a reserved keyword.
func LookupKeyword(text string) (syntax.TokenKind, bool) {
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].kind, true
	}
	return syntax.TokIdentifier, false
}

// contextualKeywords lex as identifiers and take keyword meaning only in
// specific positions. Sorted for binary search.
var contextualKeywords = []string{
	"and",
	"await",
	"from",
	"global",
	"let",
	"nameof",
	"not",
	"or",
	"select",
	"var",
	"when",
	"where",
	"with",
	"yield",
}

// IsContextualKeyword reports whether text is a contextual keyword.
func IsContextualKeyword(text string) bool {
	idx := sort.SearchStrings(contextualKeywords, text)
	return idx < len(contextualKeywords) && contextualKeywords[idx] == text
}
