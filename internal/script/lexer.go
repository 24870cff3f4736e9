package script

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF      tokenKind = iota
	tokWord               // bare word
	tokTag                // #word
	tokStatus             // %word
	tokPriority           // *n
	tokBang               // !
	tokAmp                // &
	tokLParen             // (
	tokRParen             // )
	tokLBrack             // [
	tokRBrack             // ]
	tokEllipsis           // ...
	tokArrow              // =>
)

var tokenNames = map[tokenKind]string{
	tokEOF:      "end of input",
	tokWord:     "word",
	tokTag:      "tag",
	tokStatus:   "status",
	tokPriority: "priority",
	tokBang:     "'!'",
	tokAmp:      "'&'",
	tokLParen:   "'('",
	tokRParen:   "')'",
	tokLBrack:   "'['",
	tokRBrack:   "']'",
	tokEllipsis: "'...'",
	tokArrow:    "'=>'",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind tokenKind
	text string // source text of the token
	val  string // payload without sigil, for words, tags, statuses, priorities
	pos  int    // byte offset in the input
}

var punct = map[byte]tokenKind{
	'!': tokBang,
	'&': tokAmp,
	'(': tokLParen,
	')': tokRParen,
	'[': tokLBrack,
	']': tokRBrack,
}

var sigils = map[byte]tokenKind{
	'#': tokTag,
	'%': tokStatus,
}

// lex splits src into tokens. The result always ends with tokEOF.
func lex(src string) ([]token, error) {
	var toks []token

	pos := 0
	for {
		pos = skipSpace(src, pos)
		if pos >= len(src) {
			toks = append(toks, token{kind: tokEOF, pos: len(src)})
			return toks, nil
		}

		c := src[pos]

		if kind, ok := punct[c]; ok {
			toks = append(toks, token{kind: kind, text: src[pos : pos+1], pos: pos})
			pos++

			continue
		}

		if strings.HasPrefix(src[pos:], "...") {
			toks = append(toks, token{kind: tokEllipsis, text: "...", pos: pos})
			pos += 3

			continue
		}

		if strings.HasPrefix(src[pos:], "=>") {
			toks = append(toks, token{kind: tokArrow, text: "=>", pos: pos})
			pos += 2

			continue
		}

		if c == '*' && priorityAhead(src, pos+1) {
			end := scanWord(src, pos+1)
			toks = append(toks, token{kind: tokPriority, text: src[pos:end], val: src[pos+1 : end], pos: pos})
			pos = end

			continue
		}

		if kind, ok := sigils[c]; ok {
			end := scanWord(src, pos+1)
			if end == pos+1 {
				return nil, &SyntaxError{
					Input: src,
					Pos:   pos,
					Token: src[pos : pos+1],
					Msg:   "expected a " + kind.String() + " after '" + string(c) + "'",
				}
			}

			toks = append(toks, token{kind: kind, text: src[pos:end], val: src[pos+1 : end], pos: pos})
			pos = end

			continue
		}

		end := scanWord(src, pos)
		toks = append(toks, token{kind: tokWord, text: src[pos:end], val: src[pos:end], pos: pos})
		pos = end
	}
}

// priorityAhead reports whether src[pos:] starts with an optionally
// signed digit. Any other "*word" is a plain word.
func priorityAhead(src string, pos int) bool {
	if pos < len(src) && (src[pos] == '+' || src[pos] == '-') {
		pos++
	}

	return pos < len(src) && src[pos] >= '0' && src[pos] <= '9'
}

func skipSpace(src string, pos int) int {
	for pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos:])
		if !unicode.IsSpace(r) {
			break
		}

		pos += size
	}

	return pos
}

// scanWord returns the end of the word starting at pos. A word stops at
// whitespace, punctuation, "..." or "=>".
func scanWord(src string, pos int) int {
	for pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos:])
		if unicode.IsSpace(r) {
			break
		}

		if r < utf8.RuneSelf {
			if _, ok := punct[byte(r)]; ok {
				break
			}
		}

		rest := src[pos:]
		if strings.HasPrefix(rest, "...") || strings.HasPrefix(rest, "=>") {
			break
		}

		pos += size
	}

	return pos
}
