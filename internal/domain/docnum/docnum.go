// Package docnum genera consecutivos legibles para documentos de inventario.
package docnum

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefijos por tipo de documento.
const (
	PrefixReceipt    = "RCPT"
	PrefixDelivery   = "DLV"
	PrefixTransfer   = "TRF"
	PrefixAdjustment = "ADJ"
)

// New genera un consecutivo con el formato PREFIJO-AAAAMMDD-HHMMSS-XXXXXXXX,
// donde el sufijo son 8 caracteres hex de un UUID v4. La marca de tiempo lo
// hace legible y ordenable; el sufijo aleatorio garantiza unicidad global
// incluso con documentos creados en el mismo segundo.
func New(prefix string) string {
	now := time.Now()
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102-150405"), suffix)
}
