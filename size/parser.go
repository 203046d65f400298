package size

import (
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
	"go.uber.org/zap"
)

// Lookup resolves names and resources referenced from encoded sizes. It is
// supplied by whoever owns resource tables, parser itself never keeps any.
type Lookup interface {
	// Identifier resolves canonical element reference ("@id/name") to its
	// numeric identifier. Zero identifier is treated as not found.
	Identifier(ref string) (int, bool)
	// Dimension returns value of the dimension resource in pixels.
	Dimension(id int) (float64, bool)
}

// Surface forms of the size grammar. NOTE: "dp" and "%" are used by more
// than one form, order of checks in Parse matters.
const (
	prefixMax     = "@MAX("
	suffixMax     = ")"
	suffixWrap    = "wrap"
	suffixWeight  = "w"
	suffixRatio   = "%"
	suffixPx      = "px"
	suffixMm      = "mm"
	suffixPg      = "pg"
	suffixDp      = "dp"
	suffixDip     = "dip"
	suffixSp      = "sp"
	prefixRef     = "@"
	markViewRatio = "%"
	prefixAlign   = "align@"

	prefixExistingID = "@id/"
	prefixNewID      = "@+id/"
)

// Parse converts encoded size into descriptor. Lookup is only consulted for
// dimension references, view ratios and alignments and may be nil otherwise.
func Parse(raw string, lookup Lookup) (Size, error) {
	if len(raw) == 0 {
		return nil, newParseError(ErrEmptyInput, raw)
	}

	switch {
	case strings.HasPrefix(raw, prefixMax):
		return parseMax(raw, lookup)

	// Element names could end with anything including unit suffixes, so forms
	// referencing elements are recognized before suffixes are looked at.
	case strings.HasPrefix(raw, prefixAlign):
		id, err := ResolveID(raw[len(prefixAlign):], lookup)
		if err != nil {
			return nil, err
		}
		return Align{raw: raw, related: id}, nil

	// "50%some_view" ends with weight suffix "w"
	case isViewRatio(raw):
		return parseViewRatio(raw, lookup)

	case strings.HasSuffix(raw, suffixWrap):
		return Wrap{raw: raw}, nil

	case strings.HasSuffix(raw, suffixWeight):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixWeight), suffixWeight)
		if err != nil {
			return nil, err
		}
		return Weight{scalar{raw: raw, value: v}}, nil

	case strings.HasSuffix(raw, suffixRatio):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixRatio), suffixRatio)
		if err != nil {
			return nil, err
		}
		return Ratio{scalar{raw: raw, value: v / 100}}, nil

	case strings.HasSuffix(raw, suffixPx):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixPx), suffixPx)
		if err != nil {
			return nil, err
		}
		return Pixel{scalar{raw: raw, value: v}}, nil

	case strings.HasSuffix(raw, suffixMm):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixMm), suffixMm)
		if err != nil {
			return nil, err
		}
		return Millimeter{scalar{raw: raw, value: v}}, nil

	case strings.HasSuffix(raw, suffixPg):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixPg), suffixPg)
		if err != nil {
			return nil, err
		}
		return Paragraph{scalar{raw: raw, value: v}}, nil

	case strings.HasSuffix(raw, suffixDp):
		// "dp" has always meant raw pixels here, density independent size is "dip"
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixDp), suffixDp)
		if err != nil {
			return nil, err
		}
		return Pixel{scalar{raw: raw, value: v}}, nil

	case strings.HasSuffix(raw, suffixDip):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixDip), suffixDip)
		if err != nil {
			return nil, err
		}
		return Dp{scalar{raw: raw, value: v}}, nil

	case strings.HasSuffix(raw, suffixSp):
		v, err := readFloat(raw, strings.TrimSuffix(raw, suffixSp), suffixSp)
		if err != nil {
			return nil, err
		}
		return Sp{scalar{raw: raw, value: v}}, nil

	case strings.HasPrefix(raw, prefixRef):
		return parseReference(raw, lookup)

	case strings.Contains(raw, markViewRatio):
		// whatever is left with ratio mark in it has malformed number
		return parseViewRatio(raw, lookup)
	}
	return nil, newParseError(ErrUnrecognizedFormat, raw)
}

func parseMax(raw string, lookup Lookup) (Size, error) {
	if !strings.HasSuffix(raw, suffixMax) || len(raw) < len(prefixMax)+len(suffixMax) {
		return nil, newParseError(ErrInvalidMaxSyntax, raw)
	}

	parts := splitRelations(raw[len(prefixMax) : len(raw)-len(suffixMax)])
	relations := make([]Size, 0, len(parts))
	for _, part := range parts {
		rel, err := Parse(part, lookup)
		if err != nil {
			return nil, &ParseError{Kind: ErrInvalidMaxSyntax, Raw: raw, Err: err}
		}
		relations = append(relations, rel)
	}
	return Max{raw: raw, relations: relations}, nil
}

// splitRelations splits on commas which are not enclosed into parentheses,
// so nested max keeps its own relations. No whitespace is trimmed.
func splitRelations(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// isViewRatio checks for number followed by ratio mark and element name.
func isViewRatio(raw string) bool {
	pos := strings.Index(raw, markViewRatio)
	if pos <= 0 || pos+len(markViewRatio) >= len(raw) {
		return false
	}
	_, n := pstrconv.ParseFloat([]byte(raw[:pos]))
	return n == pos
}

func parseViewRatio(raw string, lookup Lookup) (Size, error) {
	pos := strings.Index(raw, markViewRatio)
	v, err := readFloat(raw, raw[:pos], markViewRatio)
	if err != nil {
		return nil, err
	}
	id, err := ResolveID(raw[pos+len(markViewRatio):], lookup)
	if err != nil {
		return nil, err
	}
	return ViewRatio{raw: raw, value: v / 100, related: id}, nil
}

func parseReference(raw string, lookup Lookup) (Size, error) {
	resID, err := strconv.Atoi(raw[len(prefixRef):])
	if err != nil {
		return nil, &ParseError{Kind: ErrMalformedNumber, Raw: raw, Err: err}
	}
	if lookup == nil {
		return nil, &ParseError{Kind: ErrUnresolvedIdentifier, Raw: raw, Err: ErrNoLookup}
	}
	v, ok := lookup.Dimension(resID)
	if !ok {
		return nil, newParseError(ErrUnresolvedIdentifier, raw)
	}
	return Pixel{scalar{raw: raw, value: float32(v)}}, nil
}

// readFloat parses number which precedes the suffix in raw. The whole of num
// must be a number, no spaces or trailing symbols are allowed. Sizes are
// single precision, numbers overflowing it are malformed.
func readFloat(raw, num, suffix string) (float32, error) {
	v, n := pstrconv.ParseFloat([]byte(num))
	if n == 0 || n != len(num) || !finite(float32(v)) {
		return 0, &ParseError{Kind: ErrMalformedNumber, Raw: raw, Suffix: suffix}
	}
	return float32(v), nil
}

// ResolveID converts element reference token into identifier. Token could
// be a bare name, "@id/name" or "@+id/name".
func ResolveID(token string, lookup Lookup) (int, error) {
	ref := CanonicalID(token)
	if lookup == nil {
		return 0, &ParseError{Kind: ErrUnresolvedIdentifier, Raw: token, Err: ErrNoLookup}
	}
	id, ok := lookup.Identifier(ref)
	if !ok || id == 0 {
		return 0, newParseError(ErrUnresolvedIdentifier, token)
	}
	return id, nil
}

// CanonicalID returns reference to existing identifier for token.
func CanonicalID(token string) string {
	switch {
	case strings.HasPrefix(token, prefixExistingID):
		return token
	case strings.HasPrefix(token, prefixNewID):
		return prefixExistingID + token[len(prefixNewID):]
	default:
		return prefixExistingID + token
	}
}

// Parser is Parse with logging and fixed lookup, handy for processing many
// sizes against the same resource tables.
type Parser struct {
	log    *zap.Logger
	lookup Lookup
}

// NewParser creates a new size parser.
func NewParser(log *zap.Logger, lookup Lookup) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("size-parser"), lookup: lookup}
}

// Parse parses encoded size using parser lookup.
func (p *Parser) Parse(raw string) (Size, error) {
	s, err := Parse(raw, p.lookup)
	if err != nil {
		p.log.Debug("Unable to parse size", zap.String("size", raw), zap.Error(err))
		return nil, err
	}
	p.log.Debug("Parsed size", zap.String("size", raw), zap.Stringer("metric", s.Metric()))
	return s, nil
}
