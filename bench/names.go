package bench

import (
	"encoding/hex"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultNameFormat is the shape of generated resource names: a static
// prefix, a run-scoped segment, and a random segment. Each X stands for one
// generated character.
const DefaultNameFormat = "s_nb_XXXXXXXX_XXXXXXXX"

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NameGenerator produces resource names that can be traced back to the run
// which created them. The first placeholder segment of the format carries
// the run identity, the remaining segments are random.
type NameGenerator struct {
	segments     []nameSegment
	placeholders int
	runPart      string
	pattern      *regexp.Regexp
}

type nameSegment struct {
	literal string // literal text, empty for a placeholder
	width   int    // placeholder width when literal is empty
}

// NewNameGenerator returns a generator for the given run and format. An
// empty format selects DefaultNameFormat. The format must contain at least
// one X placeholder.
func NewNameGenerator(runID uuid.UUID, format string) (*NameGenerator, error) {
	if format == "" {
		format = DefaultNameFormat
	}
	segments := splitNameFormat(format)

	placeholders := 0
	var pattern strings.Builder
	pattern.WriteString("^")
	for _, seg := range segments {
		if seg.literal != "" {
			pattern.WriteString(regexp.QuoteMeta(seg.literal))
			continue
		}
		placeholders++
		pattern.WriteString("[a-zA-Z0-9]{")
		pattern.WriteString(strconv.Itoa(seg.width))
		pattern.WriteString("}")
	}
	pattern.WriteString("$")

	if placeholders == 0 {
		return nil, errors.Errorf("name format %q has no X placeholder", format)
	}

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, errors.Wrap(err, "compiling name pattern")
	}

	return &NameGenerator{
		segments:     segments,
		placeholders: placeholders,
		runPart:      hex.EncodeToString(runID[:]),
		pattern:      re,
	}, nil
}

// NewRunNameGenerator returns a generator for runID using DefaultNameFormat.
func NewRunNameGenerator(runID uuid.UUID) *NameGenerator {
	gen, err := NewNameGenerator(runID, DefaultNameFormat)
	if err != nil {
		// DefaultNameFormat is a known-good format.
		panic(err)
	}
	return gen
}

// Generate returns a fresh name. Names from the same generator share the
// run-scoped segment and differ in the random ones.
func (g *NameGenerator) Generate() string {
	var b strings.Builder
	seen := 0
	for _, seg := range g.segments {
		if seg.literal != "" {
			b.WriteString(seg.literal)
			continue
		}
		seen++
		// A single-placeholder format keeps its only segment random so
		// that generated names stay unique.
		if seen == 1 && g.placeholders > 1 {
			b.WriteString(g.runSegment(seg.width))
			continue
		}
		b.WriteString(randomSegment(seg.width))
	}
	return b.String()
}

// Matches reports whether name has the generator's format. It does not
// distinguish names produced by other runs.
func (g *NameGenerator) Matches(name string) bool {
	return g.pattern.MatchString(name)
}

func (g *NameGenerator) runSegment(width int) string {
	part := g.runPart
	for len(part) < width {
		part += g.runPart
	}
	return part[:width]
}

func randomSegment(width int) string {
	out := make([]byte, width)
	for i := range out {
		out[i] = nameAlphabet[rand.Intn(len(nameAlphabet))]
	}
	return string(out)
}

func splitNameFormat(format string) []nameSegment {
	var segments []nameSegment
	for i := 0; i < len(format); {
		j := i
		if format[i] == 'X' {
			for j < len(format) && format[j] == 'X' {
				j++
			}
			segments = append(segments, nameSegment{width: j - i})
		} else {
			for j < len(format) && format[j] != 'X' {
				j++
			}
			segments = append(segments, nameSegment{literal: format[i:j]})
		}
		i = j
	}
	return segments
}
