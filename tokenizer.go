package htmltree

import (
	"strings"
	"unicode/utf8"
)

// state enumerates the scanner's machine states. The post-'>'
// bookkeeping states exist only to decide whitespace handling at tag
// boundaries; end of input is legal there as well as in blank and
// content.
type state int

const (
	stateBlank          state = iota // before any content
	stateOpen                        // just consumed '<'
	stateStartTag                    // accumulating a start tag name
	stateStartTagClose               // whitespace region before attrs or '>'
	stateAttrField                   // accumulating an attribute name
	stateAttrSep                     // just consumed '='
	stateAttrSingleOpen              // inside a single-quoted value
	stateAttrDoubleOpen              // inside a double-quoted value
	stateAttrClose                   // just consumed a closing quote
	stateSlash                       // consumed '/' inside a start tag
	stateEndTag                      // accumulating an end tag name
	stateContent                     // character data
	stateStartClose                  // just consumed the '>' of a start tag
	stateEndClose                    // just consumed the '>' of an end tag or "/>"
	stateClose                       // whitespace bookkeeping after a tag boundary
	stateComment                     // inside <!-- -->
	stateDoctype                     // inside <!doctype ... >
	stateCData                       // raw scan for the literal closing tag
)

func (s state) String() string {
	switch s {
	case stateBlank:
		return "blank"
	case stateOpen:
		return "open"
	case stateStartTag:
		return "start-tag"
	case stateStartTagClose:
		return "start-tag-close"
	case stateAttrField:
		return "attr-field"
	case stateAttrSep:
		return "attr-sep"
	case stateAttrSingleOpen:
		return "attr-single-open"
	case stateAttrDoubleOpen:
		return "attr-double-open"
	case stateAttrClose:
		return "attr-close"
	case stateSlash:
		return "slash"
	case stateEndTag:
		return "end-tag"
	case stateContent:
		return "content"
	case stateStartClose:
		return "start-close"
	case stateEndClose:
		return "end-close"
	case stateClose:
		return "close"
	case stateComment:
		return "comment"
	case stateDoctype:
		return "doctype"
	case stateCData:
		return "cdata"
	default:
		return "unknown"
	}
}

// scanner is the tokenizer: a byte-wise state machine over a UTF-8
// buffer. Multi-byte runes only occur in text and attribute values,
// where bytes are copied through untouched.
type scanner struct {
	input     string
	pos       int
	state     state
	buf       strings.Builder
	tag       string // most recent start tag name
	tokens    []token
	cdataTags map[string]bool

	// Open preserve element, if any. While preserveDepth > 0 boundary
	// whitespace is lexed verbatim as content. The depth counts nested
	// occurrences of the same tag so an inner close does not end the
	// region early.
	preserveTag   string
	preserveDepth int
}

// tokenize scans input into a token sequence. cdataTags lists the tag
// names whose bodies are lexed as opaque CDATA.
func tokenize(input string, cdataTags map[string]bool) ([]token, error) {
	s := &scanner{input: input, cdataTags: cdataTags}
	return s.run()
}

func (s *scanner) run() ([]token, error) {
	for s.pos < len(s.input) {
		c := s.input[s.pos]

		switch s.state {
		case stateBlank, stateClose, stateStartClose, stateEndClose:
			switch {
			case c == '<':
				s.pos++
				s.state = stateOpen
			case isSpace(c) && s.preserveDepth == 0:
				s.boundarySpace()
			default:
				s.state = stateContent
			}

		case stateContent:
			s.scanContent()

		case stateOpen:
			switch {
			case c == '/':
				s.emit(tokenTagOpen, "")
				s.emit(tokenSlash, "")
				s.pos++
				s.state = stateEndTag
			case c == '!':
				if strings.HasPrefix(s.input[s.pos:], "!--") {
					s.pos += len("!--")
					s.state = stateComment
				} else {
					s.pos++
					s.state = stateDoctype
				}
			case isNameStart(c):
				s.emit(tokenTagOpen, "")
				s.state = stateStartTag
			default:
				return nil, s.parseError()
			}

		case stateStartTag:
			switch {
			case isNameChar(c):
				s.buf.WriteByte(c)
				s.pos++
			case isSpace(c):
				s.tag = s.emitBuf(tokenTagName)
				s.pos++
				s.state = stateStartTagClose
			case c == '>':
				s.tag = s.emitBuf(tokenTagName)
				s.pos++
				if err := s.finishStartTag(); err != nil {
					return nil, err
				}
			case c == '/':
				s.tag = s.emitBuf(tokenTagName)
				s.pos++
				s.state = stateSlash
			default:
				return nil, s.parseError()
			}

		case stateStartTagClose:
			switch {
			case isSpace(c):
				s.pos++
			case c == '>':
				s.pos++
				if err := s.finishStartTag(); err != nil {
					return nil, err
				}
			case c == '/':
				s.pos++
				s.state = stateSlash
			case isNameStart(c):
				s.state = stateAttrField
			default:
				return nil, s.parseError()
			}

		case stateAttrField:
			switch {
			case isNameChar(c):
				s.buf.WriteByte(c)
				s.pos++
			case c == '=':
				s.emitBuf(tokenAttrName)
				s.pos++
				s.state = stateAttrSep
			case isSpace(c):
				s.emitBuf(tokenAttrName)
				s.emit(tokenAttrValue, "") // boolean attribute
				s.pos++
				s.state = stateStartTagClose
			case c == '>':
				s.emitBuf(tokenAttrName)
				s.emit(tokenAttrValue, "")
				s.pos++
				if err := s.finishStartTag(); err != nil {
					return nil, err
				}
			case c == '/':
				s.emitBuf(tokenAttrName)
				s.emit(tokenAttrValue, "")
				s.pos++
				s.state = stateSlash
			default:
				return nil, s.parseError()
			}

		case stateAttrSep:
			switch c {
			case '\'':
				s.pos++
				s.state = stateAttrSingleOpen
			case '"':
				s.pos++
				s.state = stateAttrDoubleOpen
			default:
				return nil, s.parseError()
			}

		case stateAttrSingleOpen, stateAttrDoubleOpen:
			quote := byte('\'')
			if s.state == stateAttrDoubleOpen {
				quote = '"'
			}
			switch {
			case c == quote:
				s.emit(tokenAttrValue, s.takeBuf())
				s.pos++
				s.state = stateAttrClose
			case c == '&':
				s.decodeRef()
			default:
				s.buf.WriteByte(c)
				s.pos++
			}

		case stateAttrClose:
			switch {
			case isSpace(c):
				s.pos++
				s.state = stateStartTagClose
			case c == '>':
				s.pos++
				if err := s.finishStartTag(); err != nil {
					return nil, err
				}
			case c == '/':
				s.pos++
				s.state = stateSlash
			default:
				return nil, s.parseError()
			}

		case stateSlash:
			if c != '>' {
				return nil, s.parseError()
			}
			s.emit(tokenSelfClose, "")
			s.pos++
			s.state = stateEndClose

		case stateEndTag:
			switch {
			case isNameChar(c):
				s.buf.WriteByte(c)
				s.pos++
			case c == '>':
				if s.buf.Len() == 0 {
					return nil, s.parseError()
				}
				name := s.emitBuf(tokenTagName)
				s.emit(tokenTagClose, "")
				if s.preserveDepth > 0 && name == s.preserveTag {
					s.preserveDepth--
					if s.preserveDepth == 0 {
						s.preserveTag = ""
					}
				}
				s.pos++
				s.state = stateEndClose
			default:
				return nil, s.parseError()
			}

		case stateComment:
			idx := strings.Index(s.input[s.pos:], "-->")
			if idx < 0 {
				s.pos = len(s.input)
				return nil, s.parseError()
			}
			s.pos += idx + len("-->")
			s.state = stateClose

		case stateDoctype:
			idx := strings.IndexByte(s.input[s.pos:], '>')
			if idx < 0 {
				s.pos = len(s.input)
				return nil, s.parseError()
			}
			s.pos += idx + 1
			s.state = stateClose

		default:
			return nil, s.parseError()
		}
	}

	switch s.state {
	case stateBlank, stateContent, stateClose, stateStartClose, stateEndClose:
		s.flushText()
		return s.tokens, nil
	default:
		return nil, s.parseError()
	}
}

// scanContent accumulates character data until the next '<' or end of
// input, decoding entity references as it goes.
func (s *scanner) scanContent() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch c {
		case '<':
			s.flushText()
			s.pos++
			s.state = stateOpen
			return
		case '&':
			s.decodeRef()
		default:
			s.buf.WriteByte(c)
			s.pos++
		}
	}
	s.flushText()
}

// boundarySpace consumes a whitespace run at a tag boundary. A run
// containing a newline is indentation and is dropped entirely; a run
// of plain spaces collapses to a single space of content. Inside an
// open preserve element the run is lexed verbatim instead and this is
// never called.
func (s *scanner) boundarySpace() {
	sawNewline := false
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		if s.input[s.pos] == '\n' {
			sawNewline = true
		}
		s.pos++
	}
	if sawNewline {
		s.state = stateClose
		return
	}
	s.buf.WriteByte(' ')
	s.state = stateContent
}

// finishStartTag handles the '>' that completes a start tag: void
// tags become self-closing, preserve tags open a verbatim-whitespace
// region, and CDATA-set tags switch the scanner into a raw scan for
// their literal closing tag.
func (s *scanner) finishStartTag() error {
	if IsVoid(s.tag) {
		s.emit(tokenSelfClose, "")
		s.state = stateEndClose
		return nil
	}
	s.emit(tokenTagClose, "")
	switch {
	case s.preserveDepth > 0:
		if s.tag == s.preserveTag {
			s.preserveDepth++
		}
	case preserveTags[s.tag]:
		s.preserveTag = s.tag
		s.preserveDepth = 1
	}
	if s.cdataTags[s.tag] {
		return s.scanCData()
	}
	s.state = stateStartClose
	return nil
}

// scanCData scans raw bytes until the literal closing tag of the
// current CDATA element. Everything before it becomes one opaque
// token; normal tokenizing resumes from the closing tag's '<'.
func (s *scanner) scanCData() error {
	s.state = stateCData
	marker := "</" + s.tag + ">"
	idx := strings.Index(s.input[s.pos:], marker)
	if idx < 0 {
		s.pos = len(s.input)
		return s.parseError()
	}
	s.emit(tokenCData, s.input[s.pos:s.pos+idx])
	s.pos += idx
	s.state = stateContent
	return nil
}

// decodeRef resolves a character reference at the cursor, or passes
// the '&' through literally when the reference is unknown or
// unterminated.
func (s *scanner) decodeRef() {
	if text, size := decodeEntity(s.input[s.pos:]); size > 0 {
		s.buf.WriteString(text)
		s.pos += size
		return
	}
	s.buf.WriteByte('&')
	s.pos++
}

func (s *scanner) emit(kind tokenKind, text string) {
	s.tokens = append(s.tokens, token{kind: kind, text: text})
}

// emitBuf emits the accumulated buffer as a token of the given kind
// and returns its text.
func (s *scanner) emitBuf(kind tokenKind) string {
	text := s.takeBuf()
	s.emit(kind, text)
	return text
}

func (s *scanner) takeBuf() string {
	text := s.buf.String()
	s.buf.Reset()
	return text
}

// flushText emits pending character data, if any.
func (s *scanner) flushText() {
	if s.buf.Len() > 0 {
		s.emit(tokenText, s.takeBuf())
	}
}

// parseError builds the structured error for the current position.
func (s *scanner) parseError() error {
	var last string
	if len(s.tokens) > 0 {
		last = s.tokens[len(s.tokens)-1].String()
	}
	var ch rune
	rest := s.input[s.pos:]
	if rest != "" {
		ch, _ = utf8.DecodeRuneInString(rest)
	}
	const window = 24
	if len(rest) > window {
		rest = rest[:window]
	}
	return &ParseError{
		State:     s.state.String(),
		Char:      ch,
		LastToken: last,
		Remaining: rest,
		sentinel:  ErrParse,
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == ':' || c == '.'
}
