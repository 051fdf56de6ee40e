package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(25, 2, 10)
	assert.Equal(t, 25, p.TotalItems)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)
}

func TestCreatePaginationDefaults(t *testing.T) {
	p := CreatePagination(5, 0, -1)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}

func TestCreatePaginationEmpty(t *testing.T) {
	p := CreatePagination(0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
}
