package runtime_test

import (
	"testing"

	"github.com/aretw0/transducer/internal/runtime"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"angle symbol", "<ab>c", []string{"<ab>", "c"}},
		{"at symbol", "@x@yz", []string{"@x@", "y", "z"}},
		{"plain characters", "cat", []string{"c", "a", "t"}},
		{"epsilon literal", "a@0@b", []string{"a", "@0@", "b"}},
		{"adjacent tags", "cat<N><PL>", []string{"c", "a", "t", "<N>", "<PL>"}},
		{"empty at pair", "@@a", []string{"@@", "a"}},
		{"closer alone", "a>b", []string{"a", ">", "b"}},
		{"multibyte rune", "çé<V>", []string{"ç", "é", "<V>"}},
		{"at inside angle", "<a@b>", []string{"<a@b>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runtime.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_UnterminatedSwallowsRest(t *testing.T) {
	got, err := runtime.Tokenize("ab<cd")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "<cd"}, got)

	got, err = runtime.Tokenize("@xyz")
	require.NoError(t, err)
	assert.Equal(t, []string{"@xyz"}, got)

	got, err = runtime.Tokenize("a<")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "<"}, got)
}

func TestTokenize_Empty(t *testing.T) {
	got, err := runtime.Tokenize("")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Nil(t, got)
}
