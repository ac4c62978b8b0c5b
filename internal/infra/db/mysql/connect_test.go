package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := DSN("root", "secret", "127.0.0.1", 3306, "sentinel")
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/sentinel?parseTime=true&charset=utf8mb4&loc=UTC", got)
}
