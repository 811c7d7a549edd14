package order_test

import (
	"strings"
	"testing"
	"time"

	"localcrust/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	now := time.Unix(1725012345, 0)

	code := order.GenerateCode(now)

	assert.True(t, strings.HasPrefix(code, "LC1725012345"), code)
	assert.Len(t, code, len("LC1725012345")+4)

	// Codes generated in the same second still differ.
	other := order.GenerateCode(now)
	assert.NotEqual(t, code, other)
}
