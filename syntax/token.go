package syntax

import "fmt"

// TokenKind identifies a lexical token.
type TokenKind uint8

const (
	TokNone TokenKind = iota
	TokEOF
	TokBad

	TokIdentifier
	TokNumericLiteral
	TokStringLiteral
	TokCharLiteral
	TokInterpolatedStringStart // $"
	TokInterpolatedStringText
	TokInterpolatedStringEnd // closing "

	TokOpenParen
	TokCloseParen
	TokOpenBracket
	TokCloseBracket
	TokOpenBrace
	TokCloseBrace
	TokDot
	TokDotDot
	TokComma
	TokSemicolon
	TokColon
	TokColonColon
	TokQuestion
	TokQuestionQuestion
	TokQuestionQuestionEquals
	TokEqualsGreaterThan // =>
	TokMinusGreaterThan  // ->
	TokHash

	TokEquals
	TokEqualsEquals
	TokExclamationEquals
	TokLessThan
	TokLessThanEquals
	TokGreaterThan
	TokGreaterThanEquals
	TokLessThanLessThan
	TokLessThanLessThanEquals
	// The lexer never produces the composite right-shift tokens; the parser
	// glues adjacent '>' tokens so that nested type argument lists close cleanly.
	TokGreaterThanGreaterThan
	TokGreaterThanGreaterThanEquals
	TokGreaterThanGreaterThanGreaterThan
	TokGreaterThanGreaterThanGreaterThanEquals

	TokPlus
	TokMinus
	TokAsterisk
	TokSlash
	TokPercent
	TokAmpersand
	TokBar
	TokCaret
	TokExclamation
	TokTilde
	TokPlusPlus
	TokMinusMinus
	TokAmpersandAmpersand
	TokBarBar
	TokPlusEquals
	TokMinusEquals
	TokAsteriskEquals
	TokSlashEquals
	TokPercentEquals
	TokAmpersandEquals
	TokBarEquals
	TokCaretEquals

	tokKeywordsStart
	TokKwAs
	TokKwBase
	TokKwBool
	TokKwBreak
	TokKwByte
	TokKwCase
	TokKwCatch
	TokKwChar
	TokKwChecked
	TokKwContinue
	TokKwDecimal
	TokKwDefault
	TokKwDelegate
	TokKwDo
	TokKwDouble
	TokKwElse
	TokKwFalse
	TokKwFinally
	TokKwFloat
	TokKwFor
	TokKwForeach
	TokKwIf
	TokKwIn
	TokKwInt
	TokKwIs
	TokKwLock
	TokKwLong
	TokKwNew
	TokKwNull
	TokKwObject
	TokKwOut
	TokKwRef
	TokKwReturn
	TokKwSbyte
	TokKwShort
	TokKwSizeof
	TokKwStackalloc
	TokKwString
	TokKwSwitch
	TokKwThis
	TokKwThrow
	TokKwTrue
	TokKwTry
	TokKwTypeof
	TokKwUint
	TokKwUlong
	TokKwUnchecked
	TokKwUshort
	TokKwUsing
	TokKwVoid
	TokKwWhile
	tokKeywordsEnd

	tokenKindCount
)

var tokenKindNames = [tokenKindCount]string{
	TokNone:                    "None",
	TokEOF:                     "EOF",
	TokBad:                     "Bad",
	TokIdentifier:              "Identifier",
	TokNumericLiteral:          "NumericLiteral",
	TokStringLiteral:           "StringLiteral",
	TokCharLiteral:             "CharLiteral",
	TokInterpolatedStringStart: "InterpolatedStringStart",
	TokInterpolatedStringText:  "InterpolatedStringText",
	TokInterpolatedStringEnd:   "InterpolatedStringEnd",

	TokOpenParen:              "(",
	TokCloseParen:             ")",
	TokOpenBracket:            "[",
	TokCloseBracket:           "]",
	TokOpenBrace:              "{",
	TokCloseBrace:             "}",
	TokDot:                    ".",
	TokDotDot:                 "..",
	TokComma:                  ",",
	TokSemicolon:              ";",
	TokColon:                  ":",
	TokColonColon:             "::",
	TokQuestion:               "?",
	TokQuestionQuestion:       "??",
	TokQuestionQuestionEquals: "??=",
	TokEqualsGreaterThan:      "=>",
	TokMinusGreaterThan:       "->",
	TokHash:                   "#",

	TokEquals:                                  "=",
	TokEqualsEquals:                            "==",
	TokExclamationEquals:                       "!=",
	TokLessThan:                                "<",
	TokLessThanEquals:                          "<=",
	TokGreaterThan:                             ">",
	TokGreaterThanEquals:                       ">=",
	TokLessThanLessThan:                        "<<",
	TokLessThanLessThanEquals:                  "<<=",
	TokGreaterThanGreaterThan:                  ">>",
	TokGreaterThanGreaterThanEquals:            ">>=",
	TokGreaterThanGreaterThanGreaterThan:       ">>>",
	TokGreaterThanGreaterThanGreaterThanEquals: ">>>=",

	TokPlus:               "+",
	TokMinus:              "-",
	TokAsterisk:           "*",
	TokSlash:              "/",
	TokPercent:            "%",
	TokAmpersand:          "&",
	TokBar:                "|",
	TokCaret:              "^",
	TokExclamation:        "!",
	TokTilde:              "~",
	TokPlusPlus:           "++",
	TokMinusMinus:         "--",
	TokAmpersandAmpersand: "&&",
	TokBarBar:             "||",
	TokPlusEquals:         "+=",
	TokMinusEquals:        "-=",
	TokAsteriskEquals:     "*=",
	TokSlashEquals:        "/=",
	TokPercentEquals:      "%=",
	TokAmpersandEquals:    "&=",
	TokBarEquals:          "|=",
	TokCaretEquals:        "^=",

	TokKwAs:         "as",
	TokKwBase:       "base",
	TokKwBool:       "bool",
	TokKwBreak:      "break",
	TokKwByte:       "byte",
	TokKwCase:       "case",
	TokKwCatch:      "catch",
	TokKwChar:       "char",
	TokKwChecked:    "checked",
	TokKwContinue:   "continue",
	TokKwDecimal:    "decimal",
	TokKwDefault:    "default",
	TokKwDelegate:   "delegate",
	TokKwDo:         "do",
	TokKwDouble:     "double",
	TokKwElse:       "else",
	TokKwFalse:      "false",
	TokKwFinally:    "finally",
	TokKwFloat:      "float",
	TokKwFor:        "for",
	TokKwForeach:    "foreach",
	TokKwIf:         "if",
	TokKwIn:         "in",
	TokKwInt:        "int",
	TokKwIs:         "is",
	TokKwLock:       "lock",
	TokKwLong:       "long",
	TokKwNew:        "new",
	TokKwNull:       "null",
	TokKwObject:     "object",
	TokKwOut:        "out",
	TokKwRef:        "ref",
	TokKwReturn:     "return",
	TokKwSbyte:      "sbyte",
	TokKwShort:      "short",
	TokKwSizeof:     "sizeof",
	TokKwStackalloc: "stackalloc",
	TokKwString:     "string",
	TokKwSwitch:     "switch",
	TokKwThis:       "this",
	TokKwThrow:      "throw",
	TokKwTrue:       "true",
	TokKwTry:        "try",
	TokKwTypeof:     "typeof",
	TokKwUint:       "uint",
	TokKwUlong:      "ulong",
	TokKwUnchecked:  "unchecked",
	TokKwUshort:     "ushort",
	TokKwUsing:      "using",
	TokKwVoid:       "void",
	TokKwWhile:      "while",
}

// String returns the token's source spelling for punctuation and
// keywords, and a descriptive name otherwise.
func (k TokenKind) String() string {
	if k < tokenKindCount && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsKeyword reports whether k is a reserved keyword.
func (k TokenKind) IsKeyword() bool {
	return k > tokKeywordsStart && k < tokKeywordsEnd
}

// IsPredefinedType reports whether k is a keyword naming a built-in type.
func (k TokenKind) IsPredefinedType() bool {
	switch k {
	case TokKwBool, TokKwByte, TokKwChar, TokKwDecimal, TokKwDouble, TokKwFloat,
		TokKwInt, TokKwLong, TokKwObject, TokKwSbyte, TokKwShort, TokKwString,
		TokKwUint, TokKwUlong, TokKwUshort, TokKwVoid:
		return true
	}
	return false
}

// Keywords returns the reserved keyword spellings mapped to their kinds.
func Keywords() map[string]TokenKind {
	m := make(map[string]TokenKind, int(tokKeywordsEnd-tokKeywordsStart))
	for k := tokKeywordsStart + 1; k < tokKeywordsEnd; k++ {
		m[tokenKindNames[k]] = k
	}
	return m
}

// Token is an immutable lexical unit. A token with Missing set was
// synthesized by the parser during error recovery and has no text.
type Token struct {
	Kind    TokenKind
	Text    string
	Span    Span
	Missing bool
}

// IsZero reports whether t is the absent optional token.
func (t Token) IsZero() bool {
	return t.Kind == TokNone
}

// Present reports whether t exists in source text.
func (t Token) Present() bool {
	return t.Kind != TokNone && !t.Missing
}

// IsContextual reports whether t is an identifier spelled text. Contextual
// keywords (var, await, when, and, or, not, ...) lex as identifiers.
func (t Token) IsContextual(text string) bool {
	return t.Kind == TokIdentifier && t.Text == text
}

func (t Token) String() string {
	if t.Missing {
		return fmt.Sprintf("<missing %s>", t.Kind)
	}
	return t.Text
}
