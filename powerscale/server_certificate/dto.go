package servercertificate

type Fingerprint struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type ServerCertificateDto struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       string        `json:"status"`
	Subject      string        `json:"subject"`
	Issuer       string        `json:"issuer"`
	NotAfter     int64         `json:"not_after"`
	Fingerprints []Fingerprint `json:"fingerprints"`
}

type GetServerCertificateResponse struct {
	Certificates []ServerCertificateDto `json:"certificates"`
}

type CreateServerCertificateRequest struct {
	CertificatePath        string `json:"certificate_path"`
	CertificateKeyPath     string `json:"certificate_key_path"`
	CertificateKeyPassword string `json:"certificate_key_password,omitempty"`
	Name                   string `json:"name"`
	Description            string `json:"description,omitempty"`
}

type UpdateServerCertificateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CertificateSettings struct {
	DefaultHttpsCertificate string `json:"default_https_certificate"`
}

type GetCertificateSettingsResponse struct {
	Settings CertificateSettings `json:"settings"`
}
