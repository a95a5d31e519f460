package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionErrorUnwrap(t *testing.T) {
	cause := New("dial refused")
	err := NewConnectionError("db.example.org", 5432, "db_housing", cause)

	var connErr *ConnectionError
	require.True(t, As(err, &connErr))
	assert.Equal(t, "db.example.org", connErr.Host)
	assert.Equal(t, 5432, connErr.Port)
	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "db.example.org:5432/db_housing")
}

func TestQueryErrorMessage(t *testing.T) {
	err := NewQueryError(`SELECT * FROM "Nashville_Housing" LIMIT 1000`, New("relation does not exist"))

	var qErr *QueryError
	require.True(t, As(err, &qErr))
	assert.Contains(t, err.Error(), "Nashville_Housing")
	assert.Contains(t, err.Error(), "relation does not exist")
}

func TestColumnErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  NewColumnNotFoundError("profile.Numeric", "saleprice"),
			want: `column "saleprice" not found`,
		},
		{
			name: "wrong kind",
			err:  NewColumnTypeError("profile.Numeric", "landuse", "numeric", "text"),
			want: `column "landuse" is text, expected numeric`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.want)
		})
	}
}

func TestEmptyGroupError(t *testing.T) {
	err := NewEmptyGroupError("OneWayANOVA", 2, 1)

	var groupErr *EmptyGroupError
	require.True(t, As(err, &groupErr))
	assert.Equal(t, 2, groupErr.Required)
	assert.Equal(t, 1, groupErr.Got)
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("LabelEncoder", "Transform")
	assert.Contains(t, err.Error(), "call Fit() before Transform()")
}

func TestWrapPreservesType(t *testing.T) {
	inner := NewColumnNotFoundError("correlation.TargetTable", "saleprice")
	wrapped := Wrap(inner, "correlation stage")

	var colErr *ColumnNotFoundError
	assert.True(t, As(wrapped, &colErr))
	assert.Equal(t, "saleprice", colErr.Column)
}
