package codec

import (
	"fmt"
	"io"

	"gns3-inventory/internal/domain"
)

// Exporter interface for rendering an inventory in a format Ansible reads
type Exporter interface {
	Export(inv *domain.Inventory, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter registered for a format name
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "", "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewAnsibleCodec(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
