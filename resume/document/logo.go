package document

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed assets/logo.png
var defaultLogo []byte

// Logo is an image drawn in the top-right corner of the first page.
type Logo struct {
	Data []byte
	// Type is the image format understood by the PDF engine: PNG, JPG or GIF.
	Type string
}

// DefaultLogo returns the built-in logo.
func DefaultLogo() Logo {
	return Logo{Data: defaultLogo, Type: "PNG"}
}

// LoadLogo reads a logo from disk. An empty path yields DefaultLogo.
func LoadLogo(path string) (Logo, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultLogo(), nil
	}
	imageType, err := imageTypeFor(path)
	if err != nil {
		return Logo{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Logo{}, fmt.Errorf("read logo: %w", err)
	}
	return Logo{Data: data, Type: imageType}, nil
}

func imageTypeFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG", nil
	case ".jpg", ".jpeg":
		return "JPG", nil
	case ".gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported logo format: %s", filepath.Ext(path))
	}
}
