package module

import "watchdate/internal/services/api/decoder/domain"

// Ports is the decoder port bundle other modules may look up
type Ports struct {
	Decoder domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.b.Ports }
