package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conduit-labs/conduit/internal/repository"
)

func TestPageVerify(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		offset     int64
		wantLimit  int64
		wantOffset int64
	}{
		{"defaults", 0, 0, repository.DefaultLimit, 0},
		{"negative", -5, -3, repository.DefaultLimit, 0},
		{"capped", 1000, 40, repository.MaxLimit, 40},
		{"passthrough", 10, 20, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := tt.limit, tt.offset
			repository.PageVerify(&limit, &offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
