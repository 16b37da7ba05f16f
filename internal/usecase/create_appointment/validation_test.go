package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

func validRequest() *Request {
	return &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:  "10:00",
	}
}

func TestValidateRequest_Grid(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		wantErr   bool
	}{
		{"opening slot", "09:00", false},
		{"last slot", "19:30", false},
		{"half-hour aligned", "14:30", false},
		{"unaligned", "10:15", true},
		{"before opening", "08:30", true},
		{"at closing", "20:00", true},
		{"after closing", "21:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = types.TimeString(tt.startTime)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest_DuplicateServices(t *testing.T) {
	req := validRequest()
	req.ServiceIDs = []int64{11, 12, 11}

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_MissingFields(t *testing.T) {
	req := validRequest()
	req.ServiceIDs = nil
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.CustomerID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.StartTime = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
