package encoder

import (
	"fmt"
	"strings"
)

// Registry holds all known encoders keyed by codec identity.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with every supported encoder registered.
// Availability is not a registration gate: an encoder whose external tool
// is missing stays registered and reports the problem at encode time.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&JPEGEncoder{},
		&PNGEncoder{},
		&WebPEncoder{},
		&TIFFEncoder{},
		&BMPEncoder{},
		&GIFEncoder{},
		&ICOEncoder{},
	}

	for _, enc := range all {
		r.encoders[enc.Format()] = enc
	}

	return r
}

// Get returns the encoder for the given codec identity, or nil if unknown.
func (r *Registry) Get(id string) Encoder {
	return r.encoders[strings.ToLower(id)]
}

// Available returns the codec identities that are ready to use.
func (r *Registry) Available() []string {
	var result []string
	// Stable order.
	for _, id := range []string{"png", "jpeg", "webp", "tiff", "bmp", "gif", "ico"} {
		if enc, ok := r.encoders[id]; ok && enc.Available() {
			result = append(result, id)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
