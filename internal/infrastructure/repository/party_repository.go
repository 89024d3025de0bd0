package repository

import (
	"context"
	"fmt"

	domainRepo "github.com/sangkips/insights-api/internal/domain/repository"
	"github.com/sangkips/insights-api/internal/domain/insight"
	"gorm.io/gorm"
)

type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party registry repository
func NewPartyRepository(db *gorm.DB) domainRepo.PartyRepository {
	return &partyRepository{db: db}
}

type partyRow struct {
	Code        string
	DisplayName string
	PartyGroup  string
	Phone       *string
	Email       *string
}

func (r *partyRepository) List(ctx context.Context, pt insight.PartyType, filter insight.PartyFilter) ([]insight.Party, error) {
	var rows []partyRow

	err := r.db.WithContext(ctx).
		Table(pt.Table).
		Select(fmt.Sprintf(
			"code, %s AS display_name, COALESCE(%s, '') AS party_group, mobile_no AS phone, email_id AS email",
			pt.NameColumn, pt.GroupColumn,
		)).
		Scopes(ActiveScope, GroupScope(pt.GroupColumn, filter.Group), CodesScope(filter.Codes)).
		Order("code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", pt.Table, err)
	}

	parties := make([]insight.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, insight.Party{
			Code:        row.Code,
			DisplayName: row.DisplayName,
			Group:       row.PartyGroup,
			Phone:       row.Phone,
			Email:       row.Email,
		})
	}
	return parties, nil
}
