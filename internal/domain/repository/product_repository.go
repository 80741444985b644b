package repository

import (
	"context"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	MaxStock *int // solo productos con stock <= MaxStock
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID/GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// Update modifica datos descriptivos (nombre, costo, precio, foto, categoría); nunca Stock.
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, productID int64, stock int) error
}
