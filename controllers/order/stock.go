package orderControllers

import (
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/models"
)

// DecrementStock reserves qty units of a product with a single conditional
// UPDATE. The WHERE guard and the decrement execute atomically in the store,
// so two checkouts racing for the last units can never both succeed: the
// loser sees zero affected rows and the checkout aborts.
func DecrementStock(tx *gorm.DB, productID uint, qty int) (bool, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND count_in_stock >= ?", productID, qty).
		UpdateColumn("count_in_stock", gorm.Expr("count_in_stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
