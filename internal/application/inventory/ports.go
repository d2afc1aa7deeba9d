package inventory

import (
	"context"

	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Movements repository.MovementRepository
	Products  repository.ProductRepository
	Stock     repository.StockRepository
	Lots      repository.LotRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// Policy políticas configurables del motor de inventario.
type Policy struct {
	// AllowNegativeStock permite que SALIDA/DEVOLUCION/AJUSTE- dejen el stock bajo cero.
	AllowNegativeStock bool
}
