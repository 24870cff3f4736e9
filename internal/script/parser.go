// Package script parses the query language.
//
// Grammar, loosest binding first:
//
//	query   = filter { "=>" filter }
//	filter  = "all" | or
//	or      = and { and }          juxtaposition is OR
//	and     = unary { "&" unary }
//	unary   = "!" unary | primary
//	primary = word | "#" word | "%" word | "*" int | range | "(" or ")"
//	range   = ( "(" | "[" ) [ edge ] "..." [ edge ] ( ")" | "]" )
//	edge    = "%" word | "*" int | "inf"
//
// A bare word matches an item name exactly, including words such as
// "*urgent" where no digit follows the "*". "%word" names the one status
// sharing the longest prefix with word, ignoring case; the prefix must
// cover more than half of word. "(" and ")"
// exclude a range edge while "[" and "]" include it. A missing edge or
// "inf" is unbounded.
//
// Ranges over priorities ("*n") parse but do not evaluate; see
// [query.PriorityIn].
package script

import (
	"strconv"
	"strings"

	"github.com/grenewode/todo-queue/internal/interval"
	"github.com/grenewode/todo-queue/internal/list"
	"github.com/grenewode/todo-queue/internal/query"
)

// wordAll, as the whole of a filter, selects every item.
const wordAll = "all"

// wordInf marks an unbounded range edge.
const wordInf = "inf"

// ParseFilter parses a single filter. Stage separators are an error.
func ParseFilter(text string) (query.Filter, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}

	f, err := p.parseStage()
	if err != nil {
		return nil, err
	}

	err = p.expect(tokEOF)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// ParseQuery parses one or more filters separated by "=>".
func ParseQuery(text string) (query.Query, error) {
	p, err := newParser(text)
	if err != nil {
		return query.Query{}, err
	}

	first, err := p.parseStage()
	if err != nil {
		return query.Query{}, err
	}

	q := query.From(first)

	for p.peek().kind == tokArrow {
		p.next()

		stage, stageErr := p.parseStage()
		if stageErr != nil {
			return query.Query{}, stageErr
		}

		q = q.Then(stage)
	}

	err = p.expect(tokEOF)
	if err != nil {
		return query.Query{}, err
	}

	return q, nil
}

// ParseStatus parses a single "%word" status.
func ParseStatus(text string) (list.Status, error) {
	p, err := newParser(text)
	if err != nil {
		return list.Waiting, err
	}

	tok := p.next()
	if tok.kind != tokStatus {
		return list.Waiting, p.errorAt(tok, "expected a status such as %working")
	}

	status, err := p.resolveStatus(tok)
	if err != nil {
		return list.Waiting, err
	}

	err = p.expect(tokEOF)
	if err != nil {
		return list.Waiting, err
	}

	return status, nil
}

// ParseRangeStatus parses a bracketed status range or a single status,
// which yields the range holding only that status.
func ParseRangeStatus(text string) (interval.Range[list.Status], error) {
	p, err := newParser(text)
	if err != nil {
		return interval.Range[list.Status]{}, err
	}

	var r interval.Range[list.Status]

	switch tok := p.peek(); tok.kind {
	case tokStatus:
		p.next()

		status, statusErr := p.resolveStatus(tok)
		if statusErr != nil {
			return r, statusErr
		}

		r = interval.Only(status)
	case tokLParen, tokLBrack:
		f, rangeErr := p.parseRange()
		if rangeErr != nil {
			return r, rangeErr
		}

		s, ok := f.(query.StatusIn)
		if !ok {
			return r, p.errorAt(tok, "expected a status range")
		}

		r = s.Range
	default:
		return r, p.errorAt(tok, "expected a status or status range")
	}

	err = p.expect(tokEOF)
	if err != nil {
		return interval.Range[list.Status]{}, err
	}

	return r, nil
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func newParser(text string) (*parser, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}

	p := &parser{src: text, toks: toks}

	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Input: text, Pos: 0, Msg: "empty query"}
	}

	return p, nil
}

func (p *parser) peek() token {
	return p.peekAt(0)
}

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	tok := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}

	return tok
}

func (p *parser) expect(kind tokenKind) error {
	tok := p.peek()
	if tok.kind != kind {
		return p.errorAt(tok, "expected "+kind.String()+", found "+tok.kind.String())
	}

	p.next()

	return nil
}

func (p *parser) errorAt(tok token, msg string) *SyntaxError {
	return &SyntaxError{Input: p.src, Pos: tok.pos, Token: tok.text, Msg: msg}
}

// parseStage parses one "=>"-delimited filter.
func (p *parser) parseStage() (query.Filter, error) {
	if tok := p.peek(); tok.kind == tokWord && tok.val == wordAll {
		if k := p.peekAt(1).kind; k == tokEOF || k == tokArrow {
			p.next()
			return query.All{}, nil
		}
	}

	return p.parseOr()
}

func startsTerm(kind tokenKind) bool {
	switch kind {
	case tokWord, tokTag, tokStatus, tokPriority, tokBang, tokLParen, tokLBrack:
		return true
	default:
		return false
	}
}

func (p *parser) parseOr() (query.Filter, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for startsTerm(p.peek().kind) {
		right, rightErr := p.parseAnd()
		if rightErr != nil {
			return nil, rightErr
		}

		left = query.OrOf(left, right)
	}

	return left, nil
}

func (p *parser) parseAnd() (query.Filter, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokAmp {
		p.next()

		right, rightErr := p.parseUnary()
		if rightErr != nil {
			return nil, rightErr
		}

		left = query.AndOf(left, right)
	}

	return left, nil
}

func (p *parser) parseUnary() (query.Filter, error) {
	if p.peek().kind != tokBang {
		return p.parsePrimary()
	}

	p.next()

	f, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return query.Negate(f), nil
}

func (p *parser) parsePrimary() (query.Filter, error) {
	tok := p.peek()

	switch tok.kind {
	case tokWord:
		p.next()
		return query.ByName(tok.val), nil
	case tokTag:
		p.next()
		return query.ByTag(tok.val), nil
	case tokStatus:
		p.next()

		status, err := p.resolveStatus(tok)
		if err != nil {
			return nil, err
		}

		return query.StatusIs(status), nil
	case tokPriority:
		p.next()

		n, err := p.priority(tok)
		if err != nil {
			return nil, err
		}

		return query.ByPriority(interval.Only(n)), nil
	case tokLBrack:
		return p.parseRange()
	case tokLParen:
		if p.rangeAhead() {
			return p.parseRange()
		}

		p.next()

		f, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		closeTok := p.peek()
		if closeTok.kind != tokRParen {
			return nil, p.errorAt(closeTok, "expected ')' to close '(' at column "+strconv.Itoa(tok.pos+1))
		}

		p.next()

		return f, nil
	case tokEOF:
		return nil, p.errorAt(tok, "unexpected end of input")
	default:
		return nil, p.errorAt(tok, "unexpected "+tok.kind.String())
	}
}

// rangeAhead reports whether the "(" at the cursor opens a range rather
// than a group: a range has "..." right after the open bracket or after
// one edge.
func (p *parser) rangeAhead() bool {
	switch p.peekAt(1).kind {
	case tokEllipsis:
		return true
	case tokStatus, tokPriority:
		return p.peekAt(2).kind == tokEllipsis
	case tokWord:
		return p.peekAt(1).val == wordInf && p.peekAt(2).kind == tokEllipsis
	default:
		return false
	}
}

type edgeKind int

const (
	edgeInf edgeKind = iota
	edgeStatus
	edgePriority
)

type edge struct {
	kind     edgeKind
	status   list.Status
	priority int
}

// parseRange parses a bracketed range into a status or priority filter.
// A range with no bounded edge is a status range.
func (p *parser) parseRange() (query.Filter, error) {
	open := p.next()
	lowIncl := open.kind == tokLBrack

	low, err := p.parseEdge()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokEllipsis {
		return nil, p.errorAt(tok, "expected '...' in range")
	}

	p.next()

	high, err := p.parseEdge()
	if err != nil {
		return nil, err
	}

	closeTok := p.peek()

	var highIncl bool

	switch closeTok.kind {
	case tokRBrack:
		highIncl = true
	case tokRParen:
		highIncl = false
	default:
		return nil, p.errorAt(closeTok, "expected ')' or ']' to close range at column "+strconv.Itoa(open.pos+1))
	}

	p.next()

	if low.kind != edgeInf && high.kind != edgeInf && low.kind != high.kind {
		return nil, p.errorAt(open, "range mixes status and priority edges")
	}

	if low.kind == edgePriority || high.kind == edgePriority {
		return query.ByPriority(interval.New(
			limit(low.kind == edgeInf, lowIncl, low.priority),
			limit(high.kind == edgeInf, highIncl, high.priority),
		)), nil
	}

	return query.ByStatus(interval.New(
		limit(low.kind == edgeInf, lowIncl, low.status),
		limit(high.kind == edgeInf, highIncl, high.status),
	)), nil
}

func limit[T int | list.Status](unbounded, inclusive bool, v T) interval.Limit[T] {
	switch {
	case unbounded:
		return interval.Inf[T]()
	case inclusive:
		return interval.Include(v)
	default:
		return interval.Exclude(v)
	}
}

// parseEdge parses an optional range edge. An absent edge is unbounded.
func (p *parser) parseEdge() (edge, error) {
	tok := p.peek()

	switch tok.kind {
	case tokStatus:
		p.next()

		status, err := p.resolveStatus(tok)
		if err != nil {
			return edge{}, err
		}

		return edge{kind: edgeStatus, status: status}, nil
	case tokPriority:
		p.next()

		n, err := p.priority(tok)
		if err != nil {
			return edge{}, err
		}

		return edge{kind: edgePriority, priority: n}, nil
	case tokWord:
		if tok.val != wordInf {
			return edge{}, p.errorAt(tok, "expected a range edge (%status, *priority or inf)")
		}

		p.next()

		return edge{kind: edgeInf}, nil
	default:
		return edge{kind: edgeInf}, nil
	}
}

func (p *parser) priority(tok token) (int, error) {
	n, err := strconv.Atoi(tok.val)
	if err != nil {
		return 0, p.errorAt(tok, "priority must be an integer")
	}

	return n, nil
}

// resolveStatus maps a "%word" token to the status sharing the longest
// common prefix with word, ignoring case. The prefix must cover more than
// half of word, and a tie between statuses is an error. So "%work",
// "%working" and "%Working" all name Working, "%queued" names Queuing,
// "%w" is ambiguous and "%cat" names nothing.
func (p *parser) resolveStatus(tok token) (list.Status, error) {
	word := strings.ToLower(tok.val)

	best, bestLen, ties := list.Waiting, 0, 0

	for _, s := range list.Statuses {
		n := commonPrefixLen(word, s.String())

		switch {
		case n > bestLen:
			best, bestLen, ties = s, n, 1
		case n == bestLen && n > 0:
			ties++
		}
	}

	switch {
	case 2*bestLen <= len(word):
		return list.Waiting, p.errorAt(tok, "unknown status (want one of "+statusNames()+")")
	case ties > 1:
		return list.Waiting, p.errorAt(tok, "ambiguous status (want one of "+statusNames()+")")
	default:
		return best, nil
	}
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

func statusNames() string {
	names := make([]string, len(list.Statuses))
	for i, s := range list.Statuses {
		names[i] = s.String()
	}

	return strings.Join(names, ", ")
}
