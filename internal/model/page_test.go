package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationClampsToDefaults(t *testing.T) {
	p := NewPagination(0, -5, "", true)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
	assert.True(t, p.Ascending)
}

func TestNewPaginationKeepsValidValues(t *testing.T) {
	p := NewPagination(3, 25, "created_at", false)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, "created_at", p.OrderBy)
	assert.False(t, p.Ascending)
}
