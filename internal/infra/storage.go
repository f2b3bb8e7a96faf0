package infra

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Extensions accepted for image uploads. Anything else is silently skipped:
// the form still saves, the image field just stays unset.
var extensionesPermitidas = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Storage writes uploaded images under a local directory and hands back the
// public path the frontend serves them from.
type Storage struct {
	baseDir string // filesystem root, e.g. "static/images"
}

func NewStorage(baseDir string) *Storage {
	return &Storage{baseDir: baseDir}
}

// Guardar stores the uploaded file in a subfolder specific to the content type
// ("servicios", "portfolio") and returns the public path plus ok=true. It
// returns ok=false for a nil file or a disallowed extension, so callers can
// tell "nothing uploaded / upload rejected" apart from a stored path without
// failing the whole form submission.
func (s *Storage) Guardar(fh *multipart.FileHeader, subcarpeta string) (string, bool) {
	if fh == nil || fh.Filename == "" {
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesPermitidas[ext] {
		log.Warn().Str("archivo", fh.Filename).Msg("extension de imagen no permitida, se ignora")
		return "", false
	}

	// Timestamp prefix avoids collisions between uploads with the same name.
	nombre := time.Now().Format("20060102_150405_") + sanitizarNombre(fh.Filename)

	dir := filepath.Join(s.baseDir, subcarpeta)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("no se pudo crear carpeta de uploads")
		return "", false
	}

	src, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Msg("no se pudo abrir el archivo subido")
		return "", false
	}
	defer src.Close()

	destino := filepath.Join(dir, nombre)
	dst, err := os.Create(destino)
	if err != nil {
		log.Error().Err(err).Str("path", destino).Msg("no se pudo escribir la imagen")
		return "", false
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error().Err(err).Str("path", destino).Msg("copia de imagen fallida")
		return "", false
	}

	return "/static/images/" + subcarpeta + "/" + nombre, true
}

// sanitizarNombre strips any path components and reduces the name to a safe
// character set before it touches the filesystem.
func sanitizarNombre(nombre string) string {
	nombre = filepath.Base(nombre)
	var b strings.Builder
	for _, r := range nombre {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
