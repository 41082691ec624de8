package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"name":      "employee_name",
		"hire_date": "employee_hire_date",
	}

	p := Params{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "hire_date")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY employee_name ASC", clause)

	// kolom di luar whitelist jatuh ke default, bukan diteruskan mentah
	p = Params{SortBy: "employee_name; DROP TABLE employees", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "hire_date")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY employee_hire_date DESC", clause)

	// default key tidak ada di whitelist = error
	_, err = Params{}.SafeOrderClause(allowed, "salary")
	require.Error(t, err)
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
	assert.Nil(t, empty.NextPage)
}
