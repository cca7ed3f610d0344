package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/transducer/pkg/adapters/memory"
	"github.com/aretw0/transducer/pkg/domain"
	contract "github.com/aretw0/transducer/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	data := map[string]string{
		"nouns": "0 1 c c\n1 2 a a\n2 3 t t\n3\n",
		"tiny":  "0 1 a b\n1\n",
	}

	loader := memory.NewLoader(data)

	contract.TableLoaderContractTest(t, loader, data)
}

func TestInMemoryLoader_FromTables(t *testing.T) {
	table := domain.NewTable()
	table.SetStart("0")
	table.Add("0", "1", "a", "b")
	table.Accept("1")

	loader, err := memory.NewFromTables(map[string]*domain.Table{"t": table})
	require.NoError(t, err)

	got, err := loader.Load(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, table.Transitions(), got.Transitions())
	assert.Equal(t, table.Accepting(), got.Accepting())

	_, err = memory.NewFromTables(map[string]*domain.Table{"": table})
	assert.Error(t, err)

	// start state with no arcs and not accepting cannot lead an AT&T file
	orphan := domain.NewTable()
	orphan.SetStart("s")
	orphan.Add("x", "y", "a", "b")
	_, err = memory.NewFromTables(map[string]*domain.Table{"orphan": orphan})
	assert.Error(t, err)
}

func TestInMemoryLoader_FormatError(t *testing.T) {
	loader := memory.NewLoader(map[string]string{"bad": "0 1 a\n"})

	_, err := loader.Load(context.Background(), "bad")
	var fe *domain.FormatError
	assert.ErrorAs(t, err, &fe)
}
