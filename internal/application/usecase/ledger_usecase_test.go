package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/almacen-api/internal/application/usecase"
	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

type memLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (m *memLedgerRepo) Create(entry *entity.LedgerEntry) error {
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memLedgerRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	// Más recientes primero, como el repositorio real.
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		cp := *e
		list = append(list, &cp)
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (m *memLedgerRepo) Count(filter repository.LedgerFilter) (int64, error) {
	list, _ := m.List(filter, 0, 0)
	return int64(len(list)), nil
}

func seededLedgerRepo() *memLedgerRepo {
	repo := &memLedgerRepo{}
	_ = repo.Create(&entity.LedgerEntry{ID: "e1", Kind: entity.LedgerKindReceipt, ProductID: "prod-a", QuantityDelta: 100, BalanceAfter: 100})
	_ = repo.Create(&entity.LedgerEntry{ID: "e2", Kind: entity.LedgerKindDelivery, ProductID: "prod-a", QuantityDelta: -30, BalanceAfter: 70})
	_ = repo.Create(&entity.LedgerEntry{ID: "e3", Kind: entity.LedgerKindReceipt, ProductID: "prod-b", QuantityDelta: 50, BalanceAfter: 50})
	_ = repo.Create(&entity.LedgerEntry{ID: "e4", Kind: entity.LedgerKindAdjustment, ProductID: "prod-a", QuantityDelta: -8, BalanceAfter: 62})
	return repo
}

func TestLedgerList_SinFiltro_MasRecientesPrimero(t *testing.T) {
	uc := usecase.NewLedgerUseCase(seededLedgerRepo())

	out, err := uc.List(repository.LedgerFilter{}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 4)
	assert.Equal(t, "e4", out.Items[0].ID)
	assert.Equal(t, "e1", out.Items[3].ID)
	assert.Equal(t, int64(4), out.Page.Total)
}

func TestLedgerList_FiltroPorProducto(t *testing.T) {
	uc := usecase.NewLedgerUseCase(seededLedgerRepo())

	out, err := uc.List(repository.LedgerFilter{ProductID: "prod-a"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	for _, item := range out.Items {
		assert.Equal(t, "prod-a", item.ProductID)
	}
}

func TestLedgerList_FiltroPorTipo(t *testing.T) {
	uc := usecase.NewLedgerUseCase(seededLedgerRepo())

	out, err := uc.List(repository.LedgerFilter{Kind: entity.LedgerKindReceipt}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Page.Total)
}

func TestLedgerList_FiltrosCombinados(t *testing.T) {
	uc := usecase.NewLedgerUseCase(seededLedgerRepo())

	out, err := uc.List(repository.LedgerFilter{ProductID: "prod-a", Kind: entity.LedgerKindDelivery}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "e2", out.Items[0].ID)
	assert.Equal(t, int64(-30), out.Items[0].QuantityDelta)
}

func TestLedgerList_TipoDesconocido(t *testing.T) {
	uc := usecase.NewLedgerUseCase(seededLedgerRepo())

	_, err := uc.List(repository.LedgerFilter{Kind: "devolucion"}, 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedgerList_Paginacion(t *testing.T) {
	uc := usecase.NewLedgerUseCase(seededLedgerRepo())

	out, err := uc.List(repository.LedgerFilter{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "e2", out.Items[0].ID)
	assert.Equal(t, int64(4), out.Page.Total, "el total ignora la página")
}
