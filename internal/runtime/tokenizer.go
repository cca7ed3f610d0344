package runtime

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/transducer/pkg/domain"
)

// Tokenize splits input into transducer symbols.
//
// A symbol opened by '<' runs through the next '>', one opened by '@' runs
// through the next '@'; any other rune is a symbol by itself. An opener with
// no closer swallows the rest of the input as a single symbol.
func Tokenize(input string) ([]string, error) {
	if input == "" {
		return nil, domain.ErrEmptyInput
	}

	symbols := make([]string, 0, len(input))
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])

		closer, multi := closerFor(r)
		if !multi {
			symbols = append(symbols, input[i:i+size])
			i += size
			continue
		}

		end := strings.IndexRune(input[i+size:], closer)
		if end < 0 {
			symbols = append(symbols, input[i:])
			break
		}
		next := i + size + end + utf8.RuneLen(closer)
		symbols = append(symbols, input[i:next])
		i = next
	}
	return symbols, nil
}

func closerFor(r rune) (rune, bool) {
	switch r {
	case domain.AngleOpen:
		return domain.AngleClose, true
	case domain.AtSign:
		return domain.AtSign, true
	}
	return 0, false
}
