package asm

import (
	"bufio"
	"io"
	"math"
	"strings"
)

const (
	COMMENT     = ";" // Comment marker, to end of line.
	LABEL_SIGIL = "@" // Label declaration prefix.
	LABEL_END   = ":" // Optional label declaration suffix.
)

// LineKind classifies a normalized source line.
type LineKind int

const (
	LINE_INSTRUCTION = LineKind(iota)
	LINE_LABEL
)

// Line is a normalized line of source.
type Line struct {
	Kind     LineKind
	LineNo   int      // Physical line number, 1-based.
	Text     string   // Source text without comment.
	Label    string   // Label name, for LINE_LABEL.
	Mnemonic string   // Upper case mnemonic, for LINE_INSTRUCTION.
	Operands []string // Operand tokens, for LINE_INSTRUCTION.
}

// labelName returns the label declared by a line starting with LABEL_SIGIL.
func labelName(text string) string {
	name := strings.TrimPrefix(text, LABEL_SIGIL)
	name = strings.TrimSuffix(name, LABEL_END)
	return strings.TrimSpace(name)
}

// NormalizeLine classifies a single line of source. The ok return is false
// for lines that are empty once the comment is removed.
func NormalizeLine(text string, lineno int) (line Line, ok bool) {
	text, _, _ = strings.Cut(text, COMMENT)
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	line = Line{LineNo: lineno, Text: text}
	ok = true

	if strings.HasPrefix(text, LABEL_SIGIL) {
		line.Kind = LINE_LABEL
		line.Label = labelName(text)
		return
	}

	words := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(words) == 0 {
		// Only separators.
		ok = false
		return
	}
	line.Kind = LINE_INSTRUCTION
	line.Mnemonic = strings.ToUpper(words[0])
	line.Operands = words[1:]

	return
}

// Normalize reads source text, dropping comments and blank lines.
func Normalize(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)
	// Source lines have no length limit.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)

	var lineno int
	for scanner.Scan() {
		lineno++
		line, ok := NormalizeLine(scanner.Text(), lineno)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	err = scanner.Err()

	return
}
