package express

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Loader is a random-access tokenizer over a STEP exchange file's DATA
// section, with an express-id-to-line index and a cursor for sequential
// argument reads.
//
// The cursor discipline: GetTokenType peeks the token at the cursor and
// advances past it, so a caller that doesn't want to consume it yet must
// call Reverse() before reading it for real with the
// appropriate Get*Argument method.
type Loader struct {
	tape  []Token
	lines []Line          // indexed by lineID
	byID  map[uint32]int  // expressID -> lineID
	byTyp map[string][]uint32

	pos int // cursor, a tape index
}

// NewLoader parses raw STEP exchange-file bytes (only the DATA section is
// interpreted; HEADER/ENDSEC/END-ISO-10303-21 boilerplate is skipped).
func NewLoader(src []byte) (*Loader, error) {
	l := &Loader{
		byID:  make(map[uint32]int),
		byTyp: make(map[string][]uint32),
	}
	if err := l.parse(src); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFile reads and parses a STEP file from disk.
func LoadFile(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("express: reading %s: %w", path, err)
	}
	l, err := NewLoader(data)
	if err != nil {
		return nil, fmt.Errorf("express: parsing %s: %w", path, err)
	}
	return l, nil
}

func (l *Loader) parse(src []byte) error {
	dataStart := indexOf(src, "DATA;")
	dataEnd := indexOf(src, "ENDSEC;")
	if dataStart < 0 {
		// no DATA section marker: treat the whole buffer as entity lines
		// (convenient for tests that hand the loader a bare fragment).
		dataStart = 0
	} else {
		dataStart += len("DATA;")
	}
	if dataEnd < 0 || dataEnd < dataStart {
		dataEnd = len(src)
	}

	lx := newLexer(src[dataStart:dataEnd])
	for {
		lx.skipSpace()
		if lx.eof() {
			break
		}
		if lx.peek() != '#' {
			// skip anything that isn't the start of an entity line
			lx.pos++
			continue
		}
		line, ok, err := l.parseLine(lx)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		lineID := len(l.lines)
		l.lines = append(l.lines, line)
		l.byID[line.ExpressID] = lineID
		l.byTyp[line.IfcType] = append(l.byTyp[line.IfcType], line.ExpressID)
	}
	l.tape = lx.tape
	return nil
}

// parseLine parses one "#id=TYPE(args...);" entity. It returns ok=false
// (without error) for complex/multi-keyword entities ("#1=(FOO()BAR());"),
// which THE CORE never dispatches on and so are safely skippable.
func (l *Loader) parseLine(lx *lexer) (Line, bool, error) {
	lx.pos++ // consume '#'
	start := lx.pos
	for !lx.eof() && isDigit(lx.src[lx.pos]) {
		lx.pos++
	}
	if lx.pos == start {
		return Line{}, false, fmt.Errorf("express: malformed express id at byte %d", start)
	}
	var id uint64
	for _, c := range lx.src[start:lx.pos] {
		id = id*10 + uint64(c-'0')
	}

	lx.skipSpace()
	if lx.peek() != '=' {
		return Line{}, false, fmt.Errorf("express: expected '=' after #%d", id)
	}
	lx.pos++
	lx.skipSpace()

	if lx.peek() == '(' {
		// complex entity: skip to the matching ')' and trailing ';'
		depth := 0
		for !lx.eof() {
			switch lx.src[lx.pos] {
			case '(':
				depth++
			case ')':
				depth--
			}
			lx.pos++
			if depth == 0 {
				break
			}
		}
		lx.skipToSemicolon()
		return Line{}, false, nil
	}

	typeStart := lx.pos
	for !lx.eof() && (isAlpha(lx.src[lx.pos]) || isDigit(lx.src[lx.pos])) {
		lx.pos++
	}
	ifcType := strings.ToUpper(string(lx.src[typeStart:lx.pos]))

	lx.skipSpace()
	if lx.peek() != '(' {
		return Line{}, false, fmt.Errorf("express: expected '(' after type %s", ifcType)
	}
	lx.pos++ // consume '('

	var argOffsets []int
	lx.skipSpace()
	for !lx.eof() && lx.peek() != ')' {
		indices := lx.parseValue()
		if len(indices) > 0 {
			argOffsets = append(argOffsets, indices[0])
		}
		lx.skipSpace()
		if lx.peek() == ',' {
			lx.pos++
			lx.skipSpace()
		}
	}
	if !lx.eof() {
		lx.pos++ // consume ')'
	}
	lx.skipToSemicolon()

	return Line{ExpressID: uint32(id), IfcType: ifcType, ArgOffsets: argOffsets}, true, nil
}

func (lx *lexer) skipToSemicolon() {
	for !lx.eof() && lx.src[lx.pos] != ';' {
		lx.pos++
	}
	if !lx.eof() {
		lx.pos++
	}
}

func indexOf(src []byte, needle string) int {
	idx := strings.Index(string(src), needle)
	return idx
}

// ExpressIDToLineID implements the Loader contract.
func (l *Loader) ExpressIDToLineID(expressID uint32) uint32 {
	id, ok := l.byID[expressID]
	if !ok {
		return 0
	}
	return uint32(id)
}

// GetLine implements the Loader contract.
func (l *Loader) GetLine(lineID uint32) Line {
	if int(lineID) >= len(l.lines) {
		return Line{}
	}
	return l.lines[lineID]
}

// GetExpressIDsWithType implements the Loader contract.
func (l *Loader) GetExpressIDsWithType(ifcType string) []uint32 {
	return l.byTyp[strings.ToUpper(ifcType)]
}

// AllLines returns every entity line the loader parsed, in file order. A
// caller wanting every instance of a schema predicate like IsIfcElement
// (rather than one named type at a time) walks this instead of calling
// GetExpressIDsWithType per candidate type name.
func (l *Loader) AllLines() []Line {
	return l.lines
}

// MoveToArgumentOffset positions the cursor at the n-th argument of line.
func (l *Loader) MoveToArgumentOffset(line Line, index int) {
	if index < 0 || index >= len(line.ArgOffsets) {
		// past the end of the declared arguments: park the cursor at the
		// tape length so a subsequent GetTokenType reads as Unset-like EOF.
		l.pos = len(l.tape)
		return
	}
	l.pos = line.ArgOffsets[index]
}

// MoveTo positions the cursor at an absolute tape offset.
func (l *Loader) MoveTo(offset int) {
	l.pos = offset
}

// GetTokenType returns the type of the token at the cursor and advances
// past it. Call Reverse() first if the token still needs to be read by the
// matching Get*Argument method.
func (l *Loader) GetTokenType() TokenType {
	if l.pos >= len(l.tape) {
		return Unset
	}
	t := l.tape[l.pos].Type
	l.pos++
	return t
}

// Reverse steps the cursor one token back.
func (l *Loader) Reverse() {
	if l.pos > 0 {
		l.pos--
	}
}

// GetRefArgument reads a REF token at the cursor and advances.
func (l *Loader) GetRefArgument() uint32 {
	if l.pos >= len(l.tape) {
		return 0
	}
	v := l.tape[l.pos].Ref
	l.pos++
	return v
}

// GetRefArgumentAt reads a REF token at an arbitrary tape offset without
// moving the cursor, for iterating the offsets returned by GetSetArgument.
func (l *Loader) GetRefArgumentAt(tapeOffset int) uint32 {
	if tapeOffset < 0 || tapeOffset >= len(l.tape) {
		return 0
	}
	return l.tape[tapeOffset].Ref
}

// GetDoubleArgument reads a REAL token at the cursor and advances.
func (l *Loader) GetDoubleArgument() float64 {
	if l.pos >= len(l.tape) {
		return 0
	}
	v := l.tape[l.pos].Real
	l.pos++
	return v
}

// GetDoubleArgumentAt reads a REAL token at an arbitrary tape offset
// without moving the cursor.
func (l *Loader) GetDoubleArgumentAt(tapeOffset int) float64 {
	if tapeOffset < 0 || tapeOffset >= len(l.tape) {
		return 0
	}
	return l.tape[tapeOffset].Real
}

// GetStringArgument reads a STRING or Enum token at the cursor and advances.
func (l *Loader) GetStringArgument() string {
	if l.pos >= len(l.tape) {
		return ""
	}
	v := l.tape[l.pos].Str
	l.pos++
	return v
}

// GetStringArgumentAt reads a STRING or Enum token at an arbitrary tape
// offset without moving the cursor.
func (l *Loader) GetStringArgumentAt(tapeOffset int) string {
	if tapeOffset < 0 || tapeOffset >= len(l.tape) {
		return ""
	}
	return l.tape[tapeOffset].Str
}

// GetSetArgument reads a SET token at the cursor and advances, returning
// the tape indices of its direct children.
func (l *Loader) GetSetArgument() []int {
	if l.pos >= len(l.tape) {
		return nil
	}
	v := l.tape[l.pos].Set
	l.pos++
	return v
}

// DumpFile writes the loader's entity lines back out in STEP-ish text,
// for debugging; it is not a faithful re-serialization of the original
// argument tokens, only of express id and type.
func DumpFile(w *bufio.Writer, l *Loader) error {
	for _, line := range l.lines {
		if _, err := fmt.Fprintf(w, "#%d=%s(...);\n", line.ExpressID, line.IfcType); err != nil {
			return err
		}
	}
	return w.Flush()
}
