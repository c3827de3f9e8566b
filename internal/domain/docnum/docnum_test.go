package docnum_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/almacen-api/internal/domain/docnum"
)

var formatRe = regexp.MustCompile(`^[A-Z]+-\d{8}-\d{6}-[0-9A-F]{8}$`)

func TestNew_FormatoPorPrefijo(t *testing.T) {
	for _, prefix := range []string{
		docnum.PrefixReceipt,
		docnum.PrefixDelivery,
		docnum.PrefixTransfer,
		docnum.PrefixAdjustment,
	} {
		number := docnum.New(prefix)
		assert.True(t, formatRe.MatchString(number), "formato inesperado: %s", number)
		assert.Equal(t, prefix, number[:len(prefix)])
	}
}

func TestNew_ConsecutivosUnicosEnElMismoSegundo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := docnum.New(docnum.PrefixReceipt)
		require.False(t, seen[number], "consecutivo repetido: %s", number)
		seen[number] = true
	}
}
