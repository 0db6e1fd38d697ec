package path

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"secrettree"
)

const (
	separator    = "/"
	indexPrefix  = '#'
	digestPrefix = '@'
	labelPrefix  = '~'
)

var (
	// ErrEmptySegment is returned for paths such as "a//b" or "a/".
	ErrEmptySegment = errors.New("empty path segment")
	// ErrBadIndex is returned for "#" segments that are not a decimal uint64.
	ErrBadIndex = errors.New("invalid index segment")
	// ErrBadDigest is returned for "@" segments that are not 64 hex characters.
	ErrBadDigest = errors.New("invalid digest segment")
)

// Kind tells which tree operation a segment maps to.
type Kind uint8

const (
	KindName Kind = iota
	KindIndex
	KindDigest
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindIndex:
		return "index"
	case KindDigest:
		return "digest"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Segment is one step of a Path.
type Segment struct {
	Kind   Kind
	Name   secrettree.Name
	Index  uint64
	Digest [secrettree.DigestLen]byte
	// Label is set for digest segments written as ~label.
	Label string
}

// String renders the segment in canonical form.
func (s Segment) String() string {
	switch s.Kind {
	case KindIndex:
		return string(indexPrefix) + strconv.FormatUint(s.Index, 10)
	case KindDigest:
		if s.Label != "" {
			return string(labelPrefix) + s.Label
		}
		return string(digestPrefix) + hex.EncodeToString(s.Digest[:])
	default:
		return s.Name.String()
	}
}

// Path is a sequence of segments relative to some tree.
type Path []Segment

// Parse parses text into a Path.
func Parse(text string) (Path, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, separator)
	p := make(Path, 0, len(parts))
	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("segment %d %q: %w", i, part, err)
		}
		p = append(p, seg)
	}
	return p, nil
}

// MustParse is Parse for paths fixed at build time.
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(part string) (Segment, error) {
	if part == "" {
		return Segment{}, ErrEmptySegment
	}
	switch part[0] {
	case indexPrefix:
		n, err := strconv.ParseUint(part[1:], 10, 64)
		if err != nil {
			return Segment{}, fmt.Errorf("%w: %v", ErrBadIndex, err)
		}
		return Segment{Kind: KindIndex, Index: n}, nil
	case digestPrefix:
		raw, err := hex.DecodeString(part[1:])
		if err != nil || len(raw) != secrettree.DigestLen {
			return Segment{}, fmt.Errorf("%w: want %d hex characters", ErrBadDigest, 2*secrettree.DigestLen)
		}
		seg := Segment{Kind: KindDigest}
		copy(seg.Digest[:], raw)
		return seg, nil
	case labelPrefix:
		label := part[1:]
		return Segment{Kind: KindDigest, Digest: blake2b.Sum256([]byte(label)), Label: label}, nil
	default:
		name, err := secrettree.NewName(part)
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: KindName, Name: name}, nil
	}
}

// String renders the path in canonical form; Parse(p.String()) equals p.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, separator)
}

// Key renders p with every digest segment as @<hex>, so two spellings of the
// same tree position, such as ~db and @<hex of Blake2b-256("db")>, share one key.
func (p Path) Key() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		seg.Label = ""
		parts[i] = seg.String()
	}
	return strings.Join(parts, separator)
}

// Walk derives the tree at p below root. root is left usable, every
// intermediate tree is closed, and the caller owns the result. For an empty
// path the result is an explicit duplicate of root.
func Walk(root *secrettree.Tree, p Path) *secrettree.Tree {
	if len(p) == 0 {
		return secrettree.FromSeed(root.Seed())
	}
	current := step(root, p[0])
	for _, seg := range p[1:] {
		next := step(current, seg)
		current.Close()
		current = next
	}
	return current
}

func step(t *secrettree.Tree, seg Segment) *secrettree.Tree {
	switch seg.Kind {
	case KindIndex:
		return t.Index(seg.Index)
	case KindDigest:
		return t.Digest(seg.Digest)
	default:
		return t.Child(seg.Name)
	}
}
