package aggregates

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/agro"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
)

// CascadeResult counts the rows removed by a producer cascade.
type CascadeResult struct {
	Cultivations    int64
	RuralProperties int64
	Producers       int64
}

// CascadeDeleteProducer removes a producer together with its rural
// properties and their cultivations. It must run inside a transaction
// (dbc.Tx); the children go first so foreign keys never dangle.
func CascadeDeleteProducer(dbc dbctx.Context, producerID uint) (CascadeResult, error) {
	var out CascadeResult
	if dbc.Tx == nil {
		return out, ValidationError("producer cascade requires a transaction")
	}
	tx := dbc.DB(nil)

	properties := tx.Model(&agro.RuralProperty{}).Select("id").Where("producer_id = ?", producerID)
	res := tx.Where("rural_property_id IN (?)", properties).Delete(&agro.Cultivation{})
	if res.Error != nil {
		return out, res.Error
	}
	out.Cultivations = res.RowsAffected

	res = tx.Where("producer_id = ?", producerID).Delete(&agro.RuralProperty{})
	if res.Error != nil {
		return out, res.Error
	}
	out.RuralProperties = res.RowsAffected

	res = tx.Where("id = ?", producerID).Delete(&agro.Producer{})
	if res.Error != nil {
		return out, res.Error
	}
	out.Producers = res.RowsAffected
	if err := RequireRowsAffected(out.Producers, domainagg.KindProducer, producerID); err != nil {
		return out, err
	}
	return out, nil
}
