package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrClientNotFound        = errors.New("cliente no encontrado")
	ErrProductNotFound       = errors.New("producto no encontrado")
	ErrSaleNotFound          = errors.New("venta no encontrada")
	ErrPaymentNotFound       = errors.New("abono no encontrado")
	ErrCircleNotFound        = errors.New("tanda no encontrada")
	ErrCirclePaymentNotFound = errors.New("pago de tanda no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrBeneficiaryExempt     = errors.New("el beneficiario del periodo está exento de pago")
	ErrRolloverNotSupported  = errors.New("la tanda solo modela el primer periodo")
)

// IsNotFound agrupa los errores "no encontrado" de todas las entidades.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrSaleNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrCircleNotFound) ||
		errors.Is(err, ErrCirclePaymentNotFound)
}
