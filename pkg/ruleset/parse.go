package ruleset

import (
	"errors"
	"fmt"

	"github.com/flier/hashlife/pkg/either"
	"github.com/flier/hashlife/pkg/opt"
	"github.com/flier/hashlife/pkg/untrust"
)

// Topology names the boundary behavior an extended rulestring may request.
type Topology int

const (
	Planar Topology = iota
	Torus
	KleinBottle
	Spherical
	Cylindrical
)

func (t Topology) String() string {
	switch t {
	case Torus:
		return "torus"
	case KleinBottle:
		return "klein bottle"
	case Spherical:
		return "spherical"
	case Cylindrical:
		return "cylindrical"
	default:
		return "planar"
	}
}

// unboundedMarker is the Right variant's payload in a [Size]: there's no
// data to carry, just the fact that the axis has no limit.
type unboundedMarker struct{}

// Size is either a bounded extent (Left) or unbounded (Right, spelled "*"
// in a rulestring).
type Size either.Either[uint32, unboundedMarker]

func Bounded(n uint32) Size { return Size(either.Left[uint32, unboundedMarker](n)) }

var Unbounded = Size(either.Right[uint32, unboundedMarker](unboundedMarker{}))

func (s Size) IsBounded() bool { return either.Either[uint32, unboundedMarker](s).HasLeft() }
func (s Size) Bound() uint32   { return either.Either[uint32, unboundedMarker](s).LeftOrEmpty() }

// Extension carries the optional `:TOPOLOGYwidth,height` suffix of an
// extended rulestring, e.g. `B3/S23:T100,58`.
type Extension struct {
	Topology Topology
	Width    Size
	Height   Size
}

// ParseError is returned when a rulestring is malformed.
type ParseError struct {
	reason string
	cause  error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("ruleset: %s: %s", e.reason, e.cause)
	}
	return fmt.Sprintf("ruleset: %s", e.reason)
}

func (e *ParseError) Unwrap() error { return e.cause }

func parseErr(reason string, cause error) error { return &ParseError{reason: reason, cause: cause} }

// ErrUnrecognizedTopology is wrapped into a [ParseError] when a rulestring's
// extension names a topology letter other than P/T/K/S/C.
var ErrUnrecognizedTopology = errors.New("unrecognized topology")

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func stopsSurvivalCount(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r' || b == ':'
}

// Parse parses a header rulestring of the form "B3/S23" or "b3/s23",
// optionally followed by a ":TOPOLOGYwidth,height" extension. It returns
// the compiled Rule, its extension (if present), and leaves the reader
// positioned just past the consumed rulestring.
func Parse(r *untrust.Reader) (Rule, opt.Option[Extension], error) {
	b, ok := r.PeekByte()
	if !ok || (b != 'b' && b != 'B') {
		return Rule{}, opt.None[Extension](), parseErr("header rule must contain b or B", nil)
	}
	_, _ = r.ReadByte()

	births, ext, err := parseCountsAndExtension(r, true)
	if err != nil {
		return Rule{}, opt.None[Extension](), err
	}

	return births, ext, nil
}

// ParseNameless parses a bare "3/23" rulestring, as found in RLE #r comment
// lines, with no leading b/s letters.
func ParseNameless(r *untrust.Reader) (Rule, opt.Option[Extension], error) {
	return parseCountsAndExtension(r, false)
}

func parseCountsAndExtension(r *untrust.Reader, named bool) (Rule, opt.Option[Extension], error) {
	births, ok := r.TakeUntilByte('/')
	if !ok {
		return Rule{}, opt.None[Extension](), parseErr("some number of births is required", nil)
	}
	b, err := bytesToNum(births)
	if err != nil {
		return Rule{}, opt.None[Extension](), parseErr("birth count should only contain digits", err)
	}

	if _, err := r.ReadByte(); err != nil { // consume '/'
		return Rule{}, opt.None[Extension](), parseErr("expected '/'", err)
	}

	if named {
		sb, ok := r.PeekByte()
		if !ok || (sb != 's' && sb != 'S') {
			return Rule{}, opt.None[Extension](), parseErr("header rule must contain s or S", nil)
		}
		_, _ = r.ReadByte()
	}

	survivals, ok := r.TakeUntil(stopsSurvivalCount)
	if !ok {
		return Rule{}, opt.None[Extension](), parseErr("some number of survivals is required", nil)
	}
	s, err := bytesToNum(survivals)
	if err != nil {
		return Rule{}, opt.None[Extension](), parseErr("survival count should only contain digits", err)
	}

	if peek, ok := r.PeekByte(); ok && peek == ':' {
		ext, err := parseExtension(r)
		if err != nil {
			return Rule{}, opt.None[Extension](), err
		}
		return New(b, s), opt.Some(ext), nil
	}

	return New(b, s), opt.None[Extension](), nil
}

func parseExtension(r *untrust.Reader) (Extension, error) {
	if _, err := r.ReadByte(); err != nil { // consume ':'
		return Extension{}, parseErr("expected ':'", err)
	}

	t, ok := r.PeekByte()
	if !ok {
		return Extension{}, parseErr("unexpected eof in rule extension", nil)
	}
	_, _ = r.ReadByte()

	var topology Topology
	switch t {
	case 'P':
		topology = Planar
	case 'T':
		topology = Torus
	case 'K':
		topology = KleinBottle
	case 'S':
		topology = Spherical
	case 'C':
		topology = Cylindrical
	default:
		return Extension{}, parseErr(fmt.Sprintf("unrecognized topology: '%c'", t), ErrUnrecognizedTopology)
	}

	widthBytes, ok := r.TakeUntilByte(',')
	if !ok {
		return Extension{}, parseErr("width undefined", nil)
	}
	width, err := parseSize(widthBytes)
	if err != nil {
		return Extension{}, parseErr("failed to parse width", err)
	}

	if _, err := r.ReadByte(); err != nil { // consume ','
		return Extension{}, parseErr("expected ','", err)
	}

	heightBytes, ok := r.TakeUntil(func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
	})
	if !ok {
		return Extension{}, parseErr("height undefined", nil)
	}
	height, err := parseSize(heightBytes)
	if err != nil {
		return Extension{}, parseErr("failed to parse height", err)
	}

	return Extension{Topology: topology, Width: width, Height: height}, nil
}

func parseSize(bytes untrust.Input) (Size, error) {
	if len(bytes) == 1 && bytes[0] == '*' {
		return Unbounded, nil
	}

	n, err := bytesToUint(bytes)
	if err != nil {
		return Size{}, fmt.Errorf("should be either <number> or *, got %q", string(bytes))
	}

	return Bounded(n), nil
}

// bytesToNum converts a run of ASCII digit bytes into a 9-bit neighbor-count
// bitmask: each digit d sets bit d. This mirrors the rulestring convention
// where "b3" means "birth on exactly 3 neighbors" and "b36" means "birth on
// 3 or 6".
func bytesToNum(bytes untrust.Input) (uint16, error) {
	var n uint16

	for _, b := range bytes {
		if !isDigit(b) {
			return 0, fmt.Errorf("non-digit byte %q", b)
		}
		d := b - '0'
		if d >= 9 {
			return 0, fmt.Errorf("neighbor count digit %q out of range (must be 0-8)", b)
		}
		n |= 1 << d
	}

	return n, nil
}

func bytesToUint(bytes untrust.Input) (uint32, error) {
	if len(bytes) == 0 {
		return 0, fmt.Errorf("empty number")
	}

	var n uint32
	for _, b := range bytes {
		if !isDigit(b) {
			return 0, fmt.Errorf("non-digit byte %q", b)
		}
		n = n*10 + uint32(b-'0')
	}

	return n, nil
}
