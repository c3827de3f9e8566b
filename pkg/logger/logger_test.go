package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jortega-dev/almacen-api/pkg/logger"
)

func TestNew_EstampaNombreDelServicio(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "almacen-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.Contains(t, buf.String(), `"service":"almacen-api"`)
	assert.Contains(t, buf.String(), `"message":"arrancando"`)
}

func TestNew_SinServicioNoEstampaCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_RespetaNivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("silenciado")
	zl.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "silenciado")
	assert.Contains(t, buf.String(), "visible")
}
