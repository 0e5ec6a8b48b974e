package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSNKeepsNativeDSN(t *testing.T) {
	in := "root:pw@tcp(127.0.0.1:3306)/school?parseTime=true"
	require.Equal(t, in, normalizeMySQLDSN(in, "", ""))
}

func TestNormalizeMySQLDSNRewritesJDBC(t *testing.T) {
	got := normalizeMySQLDSN(
		"jdbc:mysql://db.example.com:3306/school?useSSL=false&characterEncoding=UTF-8&serverTimezone=UTC",
		"school", "secret",
	)
	require.Equal(t,
		"school:secret@tcp(db.example.com:3306)/school?charset=UTF-8&loc=UTC&parseTime=true&tls=false",
		got)
}

func TestNormalizeMySQLDSNDefaults(t *testing.T) {
	got := normalizeMySQLDSN("mysql://u:p@localhost:3306/school", "", "")
	require.Equal(t, "u:p@tcp(localhost:3306)/school?charset=utf8mb4&parseTime=true", got)
}
