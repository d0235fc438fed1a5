package request

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase"
	"strings"

	"github.com/spf13/cast"
)

const SortRecent = "recent"

// LedgerQueryRequest is bound from the query string of the payments table.
//
//	?q=juan&status=Completado&sort=recent
type LedgerQueryRequest struct {
	Search string `form:"q"`
	Status string `form:"status"`
	Sort   string `form:"sort"`
	Recent string `form:"recent"`
}

// ToQuery builds the view query. "sort=recent" and a truthy "recent" flag
// are equivalent.
func (r LedgerQueryRequest) ToQuery() usecase.LedgerQuery {
	recent := strings.EqualFold(strings.TrimSpace(r.Sort), SortRecent)
	if !recent && strings.TrimSpace(r.Recent) != "" {
		recent = cast.ToBool(strings.TrimSpace(r.Recent))
	}
	return usecase.LedgerQuery{
		Search: strings.TrimSpace(r.Search),
		Status: entities.PaymentStatus(strings.TrimSpace(r.Status)),
		Recent: recent,
	}
}
