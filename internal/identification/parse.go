package identification

import (
	"encoding/json"

	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// Parse decodes an identification document and links its tracks.
// Any malformed scalar fails the whole document.
func Parse(data []byte) (*FileIdentification, error) {
	var f FileIdentification
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &errors.JSONDecodeError{RawData: string(data), Err: err}
	}

	f.link()

	return &f, nil
}
