package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

func disbursementColumnNames() []string {
	return []string{
		"id", "project", "disbursement_type", "amount_usd", "amount_ars", "supplier", "description",
		"due_date", "priority", "status", "requested_by", "approved_by", "processed_by",
		"rejection_reason", "created_at", "updated_at",
	}
}

func TestDisbursementRepositoryListOrdersUrgentFirst(t *testing.T) {
	mockPool := newMockPool(t)
	repo := newDisbursementRepositoryWithPool(mockPool)

	now := time.Now()
	rows := pgxmock.NewRows(disbursementColumnNames()).
		AddRow("ord-2", "alvear", "Materials", pgtype.Numeric{}, pgtype.Numeric{}, "Corralón Norte", "cemento",
			pgtype.Date{}, "Urgent", "Requested", "fede", "", "", "", now, now).
		AddRow("ord-1", "alvear", "Materials", pgtype.Numeric{}, pgtype.Numeric{}, "Corralón Norte", "hierro",
			pgtype.Date{}, "Low", "Requested", "fede", "", "", "", now, now)

	// Priority ranks before recency; the query must carry the CASE ranking.
	mockPool.ExpectQuery(`ORDER BY CASE priority`).
		WithArgs("", "", "", int32(50), int32(0)).
		WillReturnRows(rows)

	orders, err := repo.List(context.Background(), usecase.DisbursementFilter{Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Priority != domain.PriorityUrgent || orders[1].Priority != domain.PriorityLow {
		t.Fatalf("expected urgent order first, got %q then %q", orders[0].Priority, orders[1].Priority)
	}

	assertExpectations(t, mockPool)
}
