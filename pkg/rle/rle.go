// Package rle parses the run-length-encoded pattern file format used by
// Golly and other Life simulators: an optional run of "#"-prefixed comment
// lines, an optional "x = .., y = .." header line, and a run-length
// payload of b/o/$ tokens terminated by "!".
package rle

import (
	"fmt"
	"strconv"

	"github.com/flier/hashlife/pkg/opt"
	"github.com/flier/hashlife/pkg/ruleset"
	"github.com/flier/hashlife/pkg/tuple"
	"github.com/flier/hashlife/pkg/untrust"
	"github.com/flier/hashlife/pkg/zc"
)

// File carries the metadata parsed out of an RLE file's comment and header
// lines. Name and Author are zero-copy views into the source buffer passed
// to [Read]; resolve them with [File.Name] and [File.Author].
type File struct {
	name   opt.Option[zc.View]
	author opt.Option[zc.View]

	// Offset is the "#R"/"#P" comment or header-line coordinate pair, the
	// position of the pattern's top-left cell relative to the origin.
	Offset opt.Option[tuple.Tuple2[int64, int64]]

	// Rule defaults to Conway's Game of Life (B3/S23) when the file names
	// none.
	Rule ruleset.Rule
}

// Name resolves the file's "#N" comment against the same buffer originally
// passed to [Read].
func (f File) Name(src []byte) opt.Option[string] {
	if f.name.IsNone() {
		return opt.None[string]()
	}
	return opt.Some(string(f.name.Unwrap().Bytes(&src[0])))
}

// Author resolves the file's "#O" comment against the same buffer originally
// passed to [Read].
func (f File) Author(src []byte) opt.Option[string] {
	if f.author.IsNone() {
		return opt.None[string]()
	}
	return opt.Some(string(f.author.Unwrap().Bytes(&src[0])))
}

func viewOf(src []byte, line untrust.Input) zc.View {
	return zc.New(&src[0], &line[0], len(line))
}

// Read parses an RLE file out of bytes, invoking set for every live cell
// the payload encodes. Coordinates passed to set are already offset by the
// file's header/comment offset, if any.
func Read(bytes []byte, set func(x, y int64)) (File, error) {
	r := untrust.NewReader(untrust.Input(bytes))
	file := File{Rule: ruleset.B3S23}

	for {
		ok, err := readCommentLine(r, bytes, &file)
		if err != nil {
			return File{}, &ParseError{cause: err}
		}
		if !ok {
			break
		}
	}

	if err := readHeaderLine(r, &file); err != nil {
		return File{}, &ParseError{cause: err}
	}

	var dx, dy int64
	if file.Offset.IsSome() {
		dx, dy = file.Offset.Unwrap().Unpack()
	}

	if err := readEncoding(r, dx, dy, set); err != nil {
		return File{}, &ParseError{cause: err}
	}

	return file, nil
}

// readCommentLine consumes one "#..." line, reporting false with a nil
// error when the reader isn't positioned at a comment line at all.
func readCommentLine(r *untrust.Reader, src []byte, file *File) (bool, error) {
	if b, ok := r.PeekByte(); !ok || b != '#' {
		return false, nil
	}
	_, _ = r.ReadByte()

	t, err := r.ReadByte()
	if err != nil {
		return false, &CommentLineError{cause: ErrNoCommentType}
	}

	switch t {
	case 'C', 'c':
		consumeLine(r)

	case 'N':
		if file.name.IsSome() {
			return false, &CommentLineError{Type: t, cause: ErrDuplicateField}
		}
		r.TakeWhile(isBlank)
		line, ok := r.TakeUntilByte('\n')
		if !ok || len(line) == 0 {
			return false, &CommentLineError{Type: t, cause: ErrEmptyName}
		}
		_, _ = r.ReadByte()
		file.name = opt.Some(viewOf(src, line))

	case 'O':
		if file.author.IsSome() {
			return false, &CommentLineError{Type: t, cause: ErrDuplicateField}
		}
		r.TakeWhile(isBlank)
		line, ok := r.TakeUntilByte('\n')
		if !ok || len(line) == 0 {
			return false, &CommentLineError{Type: t, cause: ErrEmptyAuthor}
		}
		_, _ = r.ReadByte()
		file.author = opt.Some(viewOf(src, line))

	case 'R', 'P':
		if file.Offset.IsSome() {
			return false, &CommentLineError{Type: t, cause: ErrDuplicateField}
		}
		r.SkipWhitespace()
		x, y, err := readCoordinates(r)
		if err != nil {
			return false, &CommentLineError{Type: t, cause: err}
		}
		file.Offset = opt.Some(tuple.New2(x, y))
		consumeLine(r)

	case 'r':
		r.SkipWhitespace()
		rule, _, err := ruleset.ParseNameless(r)
		if err != nil {
			return false, &CommentLineError{Type: t, cause: err}
		}
		file.Rule = rule
		consumeLine(r)

	default:
		// unrecognized comment types are ignored rather than rejected; Golly
		// itself defines several ("#CXRLE" etc.) that carry no semantics here.
		consumeLine(r)
	}

	return true, nil
}

// consumeLine skips to and past the next '\n', or does nothing if none
// remains in the input.
func consumeLine(r *untrust.Reader) {
	if _, ok := r.TakeUntilByte('\n'); ok {
		_, _ = r.ReadByte()
	}
}

func isSignedDigit(b byte) bool { return (b >= '0' && b <= '9') || b == '-' }

// isBlank matches the whitespace that may appear within a single line.
func isBlank(b byte) bool { return b == ' ' || b == '\t' }

// readCoordinates parses "x = N, y = M", shared by "#R"/"#P" comment lines
// and the header line.
func readCoordinates(r *untrust.Reader) (int64, int64, error) {
	if err := expectByte(r, 'x'); err != nil {
		return 0, 0, &CoordError{cause: err}
	}
	r.SkipWhitespace()
	if err := expectByte(r, '='); err != nil {
		return 0, 0, &CoordError{cause: err}
	}
	r.SkipWhitespace()

	xBytes := r.TakeWhile(isSignedDigit)
	if len(xBytes) == 0 {
		return 0, 0, &CoordError{cause: ErrNoX}
	}
	x, err := strconv.ParseInt(string(xBytes), 10, 64)
	if err != nil {
		return 0, 0, &CoordError{cause: err}
	}

	r.SkipWhitespace()
	if err := expectByte(r, ','); err != nil {
		return 0, 0, &CoordError{cause: err}
	}
	r.SkipWhitespace()
	if err := expectByte(r, 'y'); err != nil {
		return 0, 0, &CoordError{cause: err}
	}
	r.SkipWhitespace()
	if err := expectByte(r, '='); err != nil {
		return 0, 0, &CoordError{cause: err}
	}
	r.SkipWhitespace()

	yBytes := r.TakeWhile(isSignedDigit)
	if len(yBytes) == 0 {
		return 0, 0, &CoordError{cause: ErrNoY}
	}
	y, err := strconv.ParseInt(string(yBytes), 10, 64)
	if err != nil {
		return 0, 0, &CoordError{cause: err}
	}

	return x, y, nil
}

func expectByte(r *untrust.Reader, want byte) error {
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	if b != want {
		return fmt.Errorf("expected %q, got %q", want, b)
	}
	return nil
}

func expectLiteral(r *untrust.Reader, lit string) error {
	for i := 0; i < len(lit); i++ {
		if err := expectByte(r, lit[i]); err != nil {
			return err
		}
	}
	return nil
}

// readHeaderLine attempts "x = .., y = ..[, rule = ..]". x and y here are
// the pattern's bounding-box width and height, not a position; they're
// validated by parsing but otherwise unused (set already knows where each
// live cell goes, and the payload's own tokens bound it). A failed attempt
// leaves r untouched; the header line is genuinely optional, some RLE
// files go straight from comments to the payload.
func readHeaderLine(r *untrust.Reader, file *File) error {
	attempt := r.Clone()

	_, _, err := readCoordinates(attempt)
	if err != nil {
		return nil
	}

	attempt.TakeWhile(isBlank)

	if b, ok := attempt.PeekByte(); ok && b == ',' {
		_, _ = attempt.ReadByte()
		attempt.SkipWhitespace()

		if err := expectLiteral(attempt, "rule"); err != nil {
			return &HeaderLineError{cause: err}
		}
		attempt.SkipWhitespace()
		if err := expectByte(attempt, '='); err != nil {
			return &HeaderLineError{cause: err}
		}
		attempt.SkipWhitespace()

		rule, _, err := ruleset.Parse(attempt)
		if err != nil {
			return &HeaderLineError{cause: err}
		}
		file.Rule = rule
	}

	consumeLine(attempt)

	*r = *attempt

	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// readEncoding runs the payload's b/o/$ tokens through set, stopping at the
// terminating '!'.
func readEncoding(r *untrust.Reader, dx, dy int64, set func(x, y int64)) error {
	x, y := dx, dy

	for {
		r.SkipWhitespace()

		b, ok := r.PeekByte()
		if !ok {
			return &EncodingError{cause: ErrUnexpectedEOF}
		}

		count := 1
		if isDigit(b) {
			digits := r.TakeWhile(isDigit)
			n, err := strconv.Atoi(string(digits))
			if err != nil {
				return &EncodingError{cause: err}
			}
			count = n

			r.SkipWhitespace()
			if _, ok := r.PeekByte(); !ok {
				return &EncodingError{cause: ErrCutoffRunCount}
			}
		}

		tag, err := r.ReadByte()
		if err != nil {
			return &EncodingError{cause: ErrUnexpectedEOF}
		}

		switch tag {
		case 'b':
			x += int64(count)
		case 'o':
			for i := 0; i < count; i++ {
				set(x, y)
				x++
			}
		case '$':
			y -= int64(count)
			x = dx
		case '!':
			return nil
		default:
			return &EncodingError{Got: tag}
		}
	}
}
