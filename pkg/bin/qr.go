package bin

import (
	"net/url"
	"strings"

	"remat-backend/domain"

	"github.com/google/uuid"
)

// Bin QR codes encode a URL of the form <app-url>/bin/<bin-id>.
// ExtractBinID pulls the id out of a scanned payload and rejects
// anything that is not a URL ending in a bin UUID.
func ExtractBinID(qrText string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(qrText))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", domain.ErrInvalidBinQR
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return "", domain.ErrInvalidBinQR
	}

	id := parts[len(parts)-1]
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.ErrInvalidBinQR
	}

	return id, nil
}
