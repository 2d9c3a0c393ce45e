package domain_test

import (
	"testing"
	"time"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMarkDeleted(t *testing.T) {
	now := time.Now()

	entities := []domain.SoftDeletable{
		&domain.User{},
		&domain.Company{},
		&domain.Account{},
		&domain.Stock{},
		&domain.Receipt{},
	}

	for _, e := range entities {
		assert.False(t, e.IsDeleted())
		e.MarkDeleted("admin-id", now)
		assert.True(t, e.IsDeleted())
	}
}

func TestMarkDeletedStampsFields(t *testing.T) {
	now := time.Now()
	stock := domain.Stock{}

	stock.MarkDeleted("user-1", now)

	assert.NotNil(t, stock.DeletedAt)
	assert.Equal(t, now, *stock.DeletedAt)
	assert.Equal(t, "user-1", stock.DeletedBy)
}
