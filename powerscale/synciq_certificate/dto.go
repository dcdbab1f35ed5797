package synciqcertificate

type Fingerprint struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type PeerCertificateDto struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       string        `json:"status"`
	Subject      string        `json:"subject"`
	Issuer       string        `json:"issuer"`
	NotAfter     int64         `json:"not_after"`
	NotBefore    int64         `json:"not_before"`
	Fingerprints []Fingerprint `json:"fingerprints"`
}

type GetPeerCertificateResponse struct {
	Certificates []PeerCertificateDto `json:"certificates"`
}

type CreatePeerCertificateRequest struct {
	CertificatePath string `json:"certificate_path"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
}

type UpdatePeerCertificateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
