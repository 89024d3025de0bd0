package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

func TestPartyRepository_ListAll(t *testing.T) {
	// Given
	db, mock := newMockDB(t)
	repo := NewPartyRepository(db)

	rows := sqlmock.NewRows([]string{"code", "display_name", "party_group", "phone", "email"}).
		AddRow("CUST-001", "Acme Ltd", "Commercial", "+254700000001", nil).
		AddRow("CUST-002", "Beta Stores", "Retail", nil, "ops@beta.test")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT code, customer_name AS display_name, COALESCE(customer_group, '') AS party_group, mobile_no AS phone, email_id AS email FROM "customers" WHERE deleted_at IS NULL ORDER BY code ASC`,
	)).WillReturnRows(rows)

	// When
	parties, err := repo.List(context.Background(), insight.Customer, insight.PartyFilter{})

	// Then
	require.NoError(t, err)
	require.Len(t, parties, 2)
	assert.Equal(t, "CUST-001", parties[0].Code)
	assert.Equal(t, "Acme Ltd", parties[0].DisplayName)
	require.NotNil(t, parties[0].Phone)
	assert.Equal(t, "+254700000001", *parties[0].Phone)
	assert.Nil(t, parties[0].Email)
	assert.Equal(t, "Retail", parties[1].Group)
	require.NotNil(t, parties[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepository_ListFiltersAreConjunctive(t *testing.T) {
	// Given
	db, mock := newMockDB(t)
	repo := NewPartyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`FROM "suppliers" WHERE deleted_at IS NULL AND supplier_group = $1 AND code IN ($2,$3) ORDER BY code ASC`,
	)).
		WithArgs("Raw Material", "SUP-001", "SUP-009").
		WillReturnRows(sqlmock.NewRows([]string{"code", "display_name", "party_group", "phone", "email"}).
			AddRow("SUP-001", "Steel Co", "Raw Material", nil, nil))

	// When
	parties, err := repo.List(context.Background(), insight.Supplier, insight.PartyFilter{
		Group: "Raw Material",
		Codes: []string{"SUP-001", "SUP-009"},
	})

	// Then
	require.NoError(t, err)
	require.Len(t, parties, 1)
	assert.Equal(t, "Steel Co", parties[0].DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepository_ListEmptyIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPartyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "customers"`)).
		WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows([]string{"code", "display_name", "party_group", "phone", "email"}))

	parties, err := repo.List(context.Background(), insight.Customer, insight.PartyFilter{Group: "Nobody"})

	require.NoError(t, err)
	assert.NotNil(t, parties)
	assert.Empty(t, parties)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepository_ListError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPartyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "customers"`)).WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), insight.Customer, insight.PartyFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list customers")
	assert.Contains(t, err.Error(), "connection reset")
}
