package domain

// Reserved symbols of the AT&T transducer format.
const (
	// Epsilon is the empty symbol. As an input it is consumed without
	// advancing the input position; as an output it is removed from results.
	Epsilon = "@0@"

	// Multi-character symbol delimiters.
	AngleOpen  = '<'
	AngleClose = '>'
	AtSign     = '@'
)

// Direction selects which side of the table is read as input.
type Direction string

const (
	// DirectionGenerate reads the table as written: lexical to surface.
	DirectionGenerate Direction = "generate"
	// DirectionAnalyze reads the inverted table: surface to lexical.
	DirectionAnalyze Direction = "analyze"
)

// ParseDirection maps a mode keyword to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionGenerate, DirectionAnalyze:
		return Direction(s), nil
	}
	return "", &UnknownDirectionError{Value: s}
}
