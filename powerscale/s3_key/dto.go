package s3key

type S3KeyDto struct {
	AccessID           string `json:"access_id"`
	SecretKey          string `json:"secret_key"`
	SecretKeyTimestamp int64  `json:"secret_key_timestamp"`
	OldKeyExpiry       int64  `json:"old_key_expiry"`
	OldKeyTimestamp    int64  `json:"old_key_timestamp"`
}

type S3KeyResponse struct {
	Keys S3KeyDto `json:"keys"`
}

type CreateS3KeyRequest struct {
	ExistingKeyExpiryMinutes *int `json:"existing_key_expiry_minutes,omitempty"`
}

type S3KeyQuery struct {
	Zone string `q:"zone"`
}
