package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFechaOpcional(t *testing.T) {
	valida := "2025-03-15"
	invalida := "13/45/9999"
	vacia := "   "

	fecha, supplied := parseFechaOpcional(nil)
	assert.Nil(t, fecha)
	assert.False(t, supplied)

	fecha, supplied = parseFechaOpcional(&vacia)
	assert.Nil(t, fecha)
	assert.False(t, supplied)

	fecha, supplied = parseFechaOpcional(&valida)
	require.NotNil(t, fecha)
	assert.True(t, supplied)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *fecha)

	fecha, supplied = parseFechaOpcional(&invalida)
	assert.Nil(t, fecha, "una fecha ilegible se limpia")
	assert.True(t, supplied, "pero cuenta como enviada")
}

func TestParseFechaOpcionalConEspacios(t *testing.T) {
	conEspacios := "  2024-12-01  "
	fecha, supplied := parseFechaOpcional(&conEspacios)
	require.NotNil(t, fecha)
	assert.True(t, supplied)
	assert.Equal(t, "2024-12-01", fecha.Format("2006-01-02"))
}

func TestFormatFecha(t *testing.T) {
	assert.Nil(t, formatFecha(nil))

	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := formatFecha(&d)
	require.NotNil(t, s)
	assert.Equal(t, "2024-06-01", *s)
}
